package cache

import (
	"time"

	"vendordash/internal/parser"
)

// Workspace 解析缓存与会话的组合，HTML 页面和 API 共用
type Workspace struct {
	Tables   *TableCache
	Sessions *Sessions
}

// NewWorkspace 创建工作区
func NewWorkspace(tableEntries, sessionEntries int, sessionTTL time.Duration) (*Workspace, error) {
	tables, err := NewTableCache(tableEntries, parser.Load)
	if err != nil {
		return nil, err
	}
	return &Workspace{
		Tables:   tables,
		Sessions: NewSessions(sessionEntries, sessionTTL),
	}, nil
}

// Upload 解析上传文件并绑定到会话，替换会话之前的文件
// 解析失败时会话保持原状
func (w *Workspace) Upload(sess *Session, name string, data []byte) (*Upload, error) {
	if err := parser.CheckExtension(name); err != nil {
		return nil, err
	}

	tbl, hash, err := w.Tables.Load(name, data)
	if err != nil {
		return nil, err
	}

	u := &Upload{
		FileName:   name,
		Hash:       hash,
		Size:       len(data),
		UploadedAt: time.Now(),
		Table:      tbl,
	}
	sess.SetUpload(u)
	return u, nil
}

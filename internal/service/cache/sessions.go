package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"vendordash/internal/model"
)

// Upload 会话当前使用的上传文件
type Upload struct {
	FileName   string       `json:"fileName"`
	Hash       string       `json:"hash"`
	Size       int          `json:"size"`
	UploadedAt time.Time    `json:"uploadedAt"`
	Table      *model.Table `json:"-"`
}

// Session 单个浏览器会话
// 会话之间互不共享状态；上传新文件会替换旧的 Upload
type Session struct {
	ID string

	mu     sync.RWMutex
	upload *Upload
}

// Upload 当前上传文件，未上传时返回 nil
func (s *Session) Upload() *Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.upload
}

// SetUpload 绑定新上传的文件
func (s *Session) SetUpload(u *Upload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upload = u
}

// Clear 解除上传文件
func (s *Session) Clear() {
	s.SetUpload(nil)
}

// Sessions 会话存储，闲置超过 ttl 的会话会被淘汰
type Sessions struct {
	mu    sync.Mutex
	items *expirable.LRU[string, *Session]
}

// NewSessions 创建会话存储
func NewSessions(size int, ttl time.Duration) *Sessions {
	if size <= 0 {
		size = 1
	}
	return &Sessions{
		items: expirable.NewLRU[string, *Session](size, nil, ttl),
	}
}

// Get 取会话，同时刷新其过期时间
func (s *Sessions) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items.Get(id)
	if !ok {
		return nil, false
	}
	s.items.Add(id, sess)
	return sess, true
}

// GetOrCreate 取会话，不存在或已过期时新建
func (s *Sessions) GetOrCreate(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.items.Get(id); ok {
			s.items.Add(id, sess)
			return sess, false
		}
	}

	sess := &Session{ID: uuid.New().String()}
	s.items.Add(sess.ID, sess)
	return sess, true
}

// Remove 删除会话
func (s *Sessions) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Remove(id)
}

// Len 当前会话数
func (s *Sessions) Len() int {
	return s.items.Len()
}

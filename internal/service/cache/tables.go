package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"vendordash/internal/model"
	"vendordash/internal/parser"
)

// LoadFunc 解析上传文件
type LoadFunc func(name string, data []byte) (*model.Table, error)

// TableCache 按文件内容哈希缓存解析结果，同一文件重复渲染不再重新解析
// 表解析后只读，可以在会话之间共享
type TableCache struct {
	entries *lru.Cache[string, *model.Table]
	load    LoadFunc
}

// NewTableCache 创建解析缓存，size 为最多缓存的文件数
func NewTableCache(size int, load LoadFunc) (*TableCache, error) {
	if size <= 0 {
		size = 1
	}
	entries, err := lru.New[string, *model.Table](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create table cache: %w", err)
	}
	return &TableCache{entries: entries, load: load}, nil
}

// ContentHash 文件内容的 SHA-256
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Key 缓存键：文件名决定解析方式，因此与内容哈希一起参与
func Key(name, hash string) string {
	return string(parser.DetectFormat(name)) + ":" + hash
}

// Load 返回缓存的表，未命中时解析并缓存；解析失败不缓存
func (c *TableCache) Load(name string, data []byte) (*model.Table, string, error) {
	hash := ContentHash(data)
	key := Key(name, hash)

	if tbl, ok := c.entries.Get(key); ok {
		return tbl, hash, nil
	}

	tbl, err := c.load(name, data)
	if err != nil {
		return nil, hash, err
	}
	c.entries.Add(key, tbl)
	return tbl, hash, nil
}

// Len 当前缓存的文件数
func (c *TableCache) Len() int {
	return c.entries.Len()
}

package store

import "errors"

var (
	// ErrNotFound 查無擁有者名下的資料列（他人資料一律視為不存在）
	ErrNotFound = errors.New("not found")
	// ErrRelatedNotFound 關聯 id 不存在或不屬於呼叫者
	ErrRelatedNotFound = errors.New("related resource not found")
	// ErrDuplicateEmail email 唯一鍵衝突
	ErrDuplicateEmail = errors.New("email already registered")
)

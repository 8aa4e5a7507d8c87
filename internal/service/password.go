// File: internal/service/password.go
package service

import "golang.org/x/crypto/bcrypt"

// HashPassword 以 bcrypt 雜湊明文密碼
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword 比對雜湊與明文密碼，不相符時回傳錯誤
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

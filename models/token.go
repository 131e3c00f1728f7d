package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, admin access token'ının JWT payload'ı.
//
// UserID ve Username token'ın içinde taşınır — middleware her request'te
// imzayı doğruladıktan sonra DB'ye gitmeden kullanıcıyı bilir
// (kullanıcının hâlâ var olduğu ayrıca kontrol edilir, bkz. middleware).
//
// models paketinde tanımlı çünkü hem services hem middleware kullanır;
// her iki katman da models'e bağımlı olabilir, circular dependency oluşmaz.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

package models

// JWTClaims は検証済みBearerトークンから取り出した情報です。
type JWTClaims struct {
	Subject string
}

// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は/auth/registerエンドポイントのリクエストボディを表します。
// Ginのbindingタグでバリデーションを行います（必須・メール形式・文字数制限）。
type RegisterReq struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginReq は/auth/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse は認証レスポンスに含まれる公開ユーザー情報です。
// パスワードハッシュは決して含めません。
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse は登録・ログイン成功時のレスポンスボディです。
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

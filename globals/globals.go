package globals

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
	JwtSecret = []byte(jwtSecret())
}

var JwtSecret []byte

func jwtSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "your_secret_key" // dev default, override in production
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()

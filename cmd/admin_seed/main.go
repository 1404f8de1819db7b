// Command admin_seed issues an operator token for the /api/admin routes.
package main

import (
	"fmt"
	"log"
	"time"

	"reship/internal/config"
	"reship/internal/models"
	"reship/internal/utils"
)

func main() {
	config.LoadEnv()

	secret := config.GetEnv("JWT_SECRET", "")
	email := config.GetEnv("OPERATOR_EMAIL", "")
	if secret == "" || email == "" {
		log.Fatal("JWT_SECRET and OPERATOR_EMAIL must be set in environment")
	}

	claims := &models.UserClaims{
		UserID:      uint(config.GetIntEnv("OPERATOR_ID", 1)),
		Email:       email,
		Role:        models.RoleOperator,
		Permissions: models.GetDefaultPermissions(models.RoleOperator),
	}

	token, err := utils.GenerateToken(claims, secret, config.GetDurationEnv("OPERATOR_TOKEN_TTL", 12*time.Hour))
	if err != nil {
		log.Fatal("Failed to sign operator token:", err)
	}

	fmt.Println(token)
}

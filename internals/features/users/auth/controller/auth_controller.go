package controller

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"donavida_backend/internals/configs"
	userModel "donavida_backend/internals/features/users/user/model"
	helper "donavida_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

// POST /api/auth/google
// Intercambia un ID token de Google por un JWT de la app.
func (ctrl *AuthController) LoginWithGoogle(c *fiber.Ctx) error {
	var body googleLoginRequest
	if err := c.BodyParser(&body); err != nil || body.IDToken == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta id_token")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token de Google inválido")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		log.Println("[ERROR] decode id_token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el token")
	}

	user, err := ctrl.upsertUser(claimSet.Sub, claimSet.Name, claimSet.Email, claimSet.Picture)
	if err != nil {
		log.Println("[ERROR] upsert user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar el usuario")
	}

	token, err := mintAppToken(user)
	if err != nil {
		log.Println("[ERROR] mint token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión")
	}

	return helper.JsonOK(c, "Sesión iniciada", fiber.Map{
		"access_token": token,
		"user":         user,
	})
}

func (ctrl *AuthController) upsertUser(sub, name, email, picture string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := ctrl.DB.Where("user_google_sub = ?", sub).First(&user).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{}
		if user.UserName != name && name != "" {
			updates["user_name"] = name
		}
		if user.UserEmail != email && email != "" {
			updates["user_email"] = email
		}
		if picture != "" && (user.UserAvatarURL == nil || *user.UserAvatarURL != picture) {
			updates["user_avatar_url"] = picture
		}
		if len(updates) > 0 {
			if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
				return nil, err
			}
		}
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = userModel.UserModel{
			UserGoogleSub: sub,
			UserName:      name,
			UserEmail:     email,
		}
		if picture != "" {
			user.UserAvatarURL = &picture
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	default:
		return nil, err
	}
}

func mintAppToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET no configurado")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.UserID.String(),
		"name":  user.UserName,
		"email": user.UserEmail,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

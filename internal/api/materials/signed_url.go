package materials

import (
	"fmt"
	"net/url"
	"time"

	"campus-portal/config"
	"campus-portal/internal/domain/materials"

	"github.com/golang-jwt/jwt/v5"
)

// SignedDownloadURL builds a short-lived link the storage gateway accepts.
// The file bytes never pass through this service; the token just proves the
// portal authorized this material for the next few minutes.
func SignedDownloadURL(material materials.Material, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"material_id": material.ID,
		"path":        material.StoragePath,
		"exp":         time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/storage/%s?token=%s",
		config.APP_URL,
		url.PathEscape(material.StoragePath),
		signed,
	), nil
}

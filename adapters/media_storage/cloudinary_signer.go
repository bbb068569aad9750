package media_storage

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/sharafhazem/portfolio-ops/internal/config"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
)

// Signer is the signed-upload broker: it proves to the storage provider that
// an upload request was authorized, without ever seeing the file. The secret
// stays server-side; clients receive only the computed signature.
type Signer struct {
	secret string
}

func NewCloudinarySigner(cfg config.Config) *Signer {
	return &Signer{secret: cfg.Cloudinary.ApiSecret}
}

// Sign serializes params the way Cloudinary expects (sorted keys, list values
// joined with commas) and returns the keyed SHA-1 signature. It fails closed:
// no signature is ever derived from an absent secret.
func (s *Signer) Sign(params map[string]any) (string, error) {
	if s.secret == "" {
		return "", apperror.NewConfiguration("upload signing secret is not provisioned")
	}
	if len(params) == 0 {
		return "", apperror.NewInvalidInput("no upload parameters to sign", nil)
	}

	values := url.Values{}
	for key, value := range params {
		values.Set(key, canonicalParamValue(value))
	}

	signature, err := api.SignParameters(values, s.secret)
	if err != nil {
		return "", apperror.NewInternal("failed to sign upload parameters", err)
	}
	return signature, nil
}

func canonicalParamValue(value any) string {
	switch v := value.(type) {
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = canonicalParamValue(item)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(v, ",")
	case float64:
		// JSON numbers arrive as float64; timestamps must not be signed in
		// scientific notation
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

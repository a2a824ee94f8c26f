package storage

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/inventory/drive-gateway/internal/apperr"
	"github.com/inventory/drive-gateway/internal/config"
)

// New authenticates against Google Drive with a service account and returns
// a ready-to-use Drive storage. Construct it once at startup and inject it;
// the handle wraps network calls only and is safe to share across requests.
//
// A KindConfig error means no usable credentials were found and the process
// should not start serving.
func New(ctx context.Context, cfg *config.Config) (*Drive, error) {
	data, err := resolveServiceAccount(cfg.ServiceAccountFile, cfg.ServiceAccountJSON)
	if err != nil {
		return nil, err
	}

	jwtCfg, err := google.JWTConfigFromJSON(data, drive.DriveScope)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConfig, err, "parse service account document")
	}

	svc, err := drive.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConfig, err, "create drive service")
	}

	return &Drive{svc: svc}, nil
}

// resolveServiceAccount picks the secret document: a readable file at path
// wins, otherwise the inline JSON is used. Inline documents arrive through
// env-style channels where the private key's line breaks are escaped as
// literal \n; they must be unescaped or authentication silently fails.
func resolveServiceAccount(path, inline string) ([]byte, error) {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}

	if strings.TrimSpace(inline) == "" {
		return nil, apperr.Config("no service account credentials: file %q missing and no inline document set", path)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(inline), &doc); err != nil {
		return nil, apperr.Wrap(apperr.KindConfig, err, "parse inline service account document")
	}
	if key, ok := doc["private_key"].(string); ok {
		doc["private_key"] = strings.ReplaceAll(key, `\n`, "\n")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConfig, err, "encode service account document")
	}
	return data, nil
}

// ensure the concrete type keeps satisfying the port.
var _ Storage = (*Drive)(nil)

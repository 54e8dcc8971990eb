package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Asset is one stored image: the id used for later destruction plus the
// public URL handed to clients.
type Asset struct {
	PublicID string `json:"public_id" bson:"publicid"`
	URL      string `json:"url" bson:"url"`
}

// Store uploads and destroys image assets. Product creation sends base64
// data URIs the way the storefront submits them.
type Store interface {
	Upload(ctx context.Context, dataURI, folder string) (Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

// DiskStore keeps assets under baseDir and serves them under baseURL/static/.
type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore() *DiskStore {
	baseURL := strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &DiskStore{baseDir: "./static", baseURL: baseURL}
}

func (s *DiskStore) Upload(ctx context.Context, dataURI, folder string) (Asset, error) {
	raw, err := decodeDataURI(dataURI)
	if err != nil {
		return Asset{}, err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return Asset{}, fmt.Errorf("decode image: %w", err)
	}

	id := uuid.New().String()
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Asset{}, err
	}

	if err := imaging.Save(img, filepath.Join(dir, id+".jpg")); err != nil {
		return Asset{}, fmt.Errorf("save image: %w", err)
	}

	thumb := imaging.Resize(img, 150, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(dir, id+"_thumb.jpg")); err != nil {
		return Asset{}, fmt.Errorf("save thumbnail: %w", err)
	}

	return Asset{
		PublicID: path.Join(folder, id),
		URL:      s.baseURL + "/static/" + path.Join(folder, id) + ".jpg",
	}, nil
}

func (s *DiskStore) Destroy(ctx context.Context, publicID string) error {
	base := filepath.Join(s.baseDir, filepath.FromSlash(publicID))
	if err := os.Remove(base + ".jpg"); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(base + "_thumb.jpg"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// decodeDataURI strips a "data:image/...;base64," prefix if present and
// decodes the remainder. Bare base64 payloads are accepted too.
func decodeDataURI(dataURI string) ([]byte, error) {
	payload := dataURI
	if strings.HasPrefix(dataURI, "data:") {
		idx := strings.Index(dataURI, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URI")
		}
		payload = dataURI[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64 image: %w", err)
	}
	return raw, nil
}

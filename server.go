package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/netisu/melody/aeno"
)

// Holds shared dependencies like config and the S3 client.
type Server struct {
	config        *Config
	s3Uploader    s3iface.S3API // nil: images are returned in the response
	renderTimeout time.Duration
	uploadTimeout time.Duration
}

// RenderRequest is the body of a render call.
type RenderRequest struct {
	Hash  string         `json:"hash"`
	Scene aeno.SceneFile `json:"scene"`
}

// hashPattern restricts hashes to characters that are safe in object keys.
var hashPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func NewServer(cfg *Config, uploader s3iface.S3API) *Server {
	return &Server{
		config:        cfg,
		s3Uploader:    uploader,
		renderTimeout: RenderTimeout,
		uploadTimeout: UploadTimeout,
	}
}

// newS3Client returns nil when no bucket is configured.
func newS3Client(cfg *Config) (s3iface.S3API, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}
	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Endpoint:         aws.String(cfg.S3Endpoint),
		Region:           aws.String(cfg.S3Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("create S3 session: %w", err)
	}
	return s3.New(sess), nil
}

func runServer(cfg *Config) {
	uploader, err := newS3Client(cfg)
	if err != nil {
		log.Fatalf("Failed to create S3 session: %v", err)
	}
	if uploader == nil {
		log.Printf("No S3 bucket configured, images are returned in responses")
	}

	server := NewServer(cfg, uploader)
	http.HandleFunc("/", server.handleRender)

	log.Printf("Starting server on %s", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, nil); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}

// withinPixelBudget reports whether a width x height frame fits in MaxPixels
// without multiplying the sides.
func withinPixelBudget(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxPixels/height
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if s.config.PostKey != "" && r.Header.Get("Aeo-Access-Key") != s.config.PostKey {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req RenderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !hashPattern.MatchString(req.Hash) {
		http.Error(w, "Invalid hash", http.StatusBadRequest)
		return
	}
	setup, err := req.Scene.Build()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !withinPixelBudget(setup.Width, setup.Height) {
		http.Error(w, "Image too large", http.StatusBadRequest)
		return
	}

	log.Printf("Received render %s (%dx%d, %d spheres)", req.Hash, setup.Width, setup.Height, len(setup.Scene.Spheres))
	start := time.Now()

	frame, err := s.runRenderWithTimeout(r.Context(), setup)
	if err != nil {
		log.Printf("Render %s failed: %v", req.Hash, err)
		http.Error(w, "Render failed", http.StatusGatewayTimeout)
		return
	}

	img := frame.Image()
	var buf bytes.Buffer
	if err := aeno.EncodePNG(&buf, img); err != nil {
		log.Printf("Encode %s failed: %v", req.Hash, err)
		http.Error(w, "Encode failed", http.StatusInternalServerError)
		return
	}

	if s.s3Uploader == nil {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
		log.Printf("Render %s finished in %v", req.Hash, time.Since(start))
		return
	}

	var thumb bytes.Buffer
	if err := aeno.EncodePNG(&thumb, aeno.Thumbnail(img, ThumbSize)); err != nil {
		log.Printf("Encode thumbnail %s failed: %v", req.Hash, err)
		http.Error(w, "Encode failed", http.StatusInternalServerError)
		return
	}

	uploads := []struct {
		key  string
		data []byte
	}{
		{path.Join("renders", req.Hash+".png"), buf.Bytes()},
		{path.Join("renders", req.Hash+"_thumb.png"), thumb.Bytes()},
	}
	for _, u := range uploads {
		if err := s.uploadToS3(r.Context(), u.data, u.key); err != nil {
			log.Printf("Upload %s failed: %v", req.Hash, err)
			http.Error(w, "Upload failed", http.StatusInternalServerError)
			return
		}
	}

	log.Printf("Render %s finished in %v", req.Hash, time.Since(start))
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Render processed.")
}

// runRenderWithTimeout renders in its own goroutine so a stuck or panicking
// render turns into an error instead of taking the server down.
func (s *Server) runRenderWithTimeout(ctx context.Context, setup *aeno.Setup) (*aeno.Frame, error) {
	ctx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()

	type result struct {
		frame *aeno.Frame
		err   error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{nil, fmt.Errorf("panic in renderer: %v", r)}
			}
		}()

		frame, err := aeno.Render(ctx, setup.Scene, setup.Camera, aeno.RenderOptions{
			Width:   setup.Width,
			Height:  setup.Height,
			Workers: s.config.Workers,
		})
		resChan <- result{frame, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("render timeout")
	case res := <-resChan:
		return res.frame, res.err
	}
}

func (s *Server) uploadToS3(ctx context.Context, data []byte, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := s.s3Uploader.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return nil
}

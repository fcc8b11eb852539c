package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are never recorded as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin",
	"/favicon",
	"/healthz",
	"/theme",
	"/go/",
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Hasher turns client addresses into salted, truncated hashes. The salt
// lives only in memory, so hashes are stable for one process lifetime.
type Hasher struct {
	salt string
}

func NewHasher() (*Hasher, error) {
	salt, err := randomToken()
	if err != nil {
		return nil, err
	}
	return &Hasher{salt: salt}, nil
}

func (h *Hasher) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Tracker records page views in the background.
type Tracker struct {
	store  *Store
	hasher *Hasher
	wg     sync.WaitGroup
}

func NewTracker(store *Store, hasher *Hasher) *Tracker {
	return &Tracker{store: store, hasher: hasher}
}

// Middleware records GET page views, skipping assets, admin pages and
// clients that send Do Not Track.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		hashed := t.hasher.HashIP(c.ClientIP())
		ua := c.GetHeader("User-Agent")
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			if err := t.store.RecordVisit(context.Background(), hashed, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

// RecordClick counts a project link click in the background.
func (t *Tracker) RecordClick(slug string) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.store.RecordClick(context.Background(), slug); err != nil {
			log.Printf("Error recording click: %v", err)
		}
	}()
}

// Wait blocks until every pending write has finished.
func (t *Tracker) Wait() { t.wg.Wait() }

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// RunCleanup deletes visits older than months now and then once per
// interval until ctx is done.
func (t *Tracker) RunCleanup(ctx context.Context, months int, interval time.Duration) {
	cleanup := func() {
		n, err := t.store.Cleanup(ctx, months)
		if err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
			return
		}
		if n > 0 {
			log.Printf("Privacy cleanup: removed %d visitor records older than %d months", n, months)
		}
	}

	cleanup()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanup()
		}
	}
}

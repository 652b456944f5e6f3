package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"awogen/internal/build"
	"awogen/internal/domain/config"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Server 是开发预览：构建到 public 目录，监听数据目录变化自动重建，
// SSE 通道广播 reload。产出和正式构建走同一条流水线。
type Server struct {
	cfg     config.Config
	builder *build.Builder
	log     *zap.SugaredLogger

	sseMu     sync.Mutex
	sseConns  map[chan string]struct{}
	watcher   *fsnotify.Watcher
	watchOnce sync.Once
}

func New(cfg config.Config, indexPath string, log *zap.SugaredLogger) *Server {
	return &Server{
		cfg: cfg,
		builder: &build.Builder{
			Cfg:           cfg,
			IndexPath:     indexPath,
			Log:           log,
			SkipUnchanged: true,
		},
		log:      log,
		sseConns: make(map[chan string]struct{}),
	}
}

func (s *Server) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := s.rebuild(ctx); err != nil {
		return err
	}

	if err := s.startWatch(ctx); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/dev/events", s.handleSSE)
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.Build.PublicDir)))

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	s.log.Infow("preview listening", "addr", addr, "public", s.cfg.Build.PublicDir)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) rebuild(ctx context.Context) error {
	res, err := s.builder.Run(ctx)
	if err != nil {
		return fmt.Errorf("rebuild: %w", err)
	}
	if res.Written > 0 {
		s.broadcastSSE("reload")
	}
	return nil
}

func (s *Server) startWatch(ctx context.Context) error {
	var err error
	s.watchOnce.Do(func() {
		w, e := fsnotify.NewWatcher()
		if e != nil {
			err = e
			return
		}
		s.watcher = w

		go s.watchLoop(ctx)

		if e := w.Add(s.cfg.Build.DataDir); e != nil {
			err = e
			return
		}
		if dir := s.cfg.Build.ThemeDir; dir != "" {
			if _, statErr := os.Stat(dir); statErr == nil {
				err = w.Add(dir)
			}
		}
	})
	return err
}

func (s *Server) watchLoop(ctx context.Context) {
	s.log.Infow("watching for data changes", "dir", s.cfg.Build.DataDir)
	debounce := time.NewTicker(time.Hour)
	debounce.Stop()

	trigger := func() {
		select {
		case <-debounce.C:
		default:
		}
		debounce.Reset(200 * time.Millisecond)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				if isRelevant(ev.Name) {
					trigger()
				}
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warnw("watcher error", "err", err)
		case <-debounce.C:
			ctx2, cancel := context.WithTimeout(ctx, 10*time.Second)
			if err := s.rebuild(ctx2); err != nil {
				s.log.Errorw("rebuild failed", "err", err)
			}
			cancel()
		}
	}
}

func isRelevant(path string) bool {
	switch filepath.Ext(path) {
	case ".json", ".tmpl", ".yaml", ".yml":
		return true
	}
	return false
}

func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan string, 8)

	s.sseMu.Lock()
	s.sseConns[ch] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseConns, ch)
		close(ch)
		s.sseMu.Unlock()
	}()
	fmt.Fprintf(w, "data: %s\n\n", "hello")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (s *Server) broadcastSSE(msg string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()
	for ch := range s.sseConns {
		select {
		case ch <- msg:
		default:
		}
	}
}

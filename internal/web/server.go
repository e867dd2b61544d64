// Package web отдает форму добавления песен по HTTP
package web

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/hazadus/songreg/internal/data"
	"github.com/hazadus/songreg/internal/register"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<form method="post" action="/songs">
<input type="text" id="title" name="title" placeholder="Title" value="{{.Values.title}}">
<input type="text" id="artist" name="artist" placeholder="Artist" value="{{.Values.artist}}">
<input type="text" id="song_id" name="song_id" placeholder="Song ID" value="{{.Values.song_id}}">
<button type="submit">Add Song</button>
</form>
{{if .Alert}}<p id="alert" role="alert">{{.Alert}}</p>
{{end}}<ul id="{{.DisplayKey}}">
{{range .Lines}}<li>{{.}}</li>
{{end}}</ul>
</body>
</html>
`))

type pageData struct {
	Title      string
	DisplayKey string
	Alert      string
	Values     map[string]string
	Lines      []string
}

// Server хранит реестр одной сессии и отдает его по HTTP.
// Все обращения к реестру сериализуются мьютексом.
type Server struct {
	mu      sync.Mutex
	manager *register.Manager
	form    *register.MemoryForm
	display *register.MemoryDisplay

	title  string
	logger *slog.Logger
	server *http.Server
}

// NewServer создает сервер с пустым реестром
func NewServer(addr, title string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		form:    register.NewMemoryForm(),
		display: &register.MemoryDisplay{},
		title:   title,
		logger:  logger,
	}
	s.manager = register.NewManager(data.NewRegister(), s.form, s.display, logger)
	s.manager.DisplaySongs()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /songs", s.handleAddSong)
	mux.HandleFunc("GET /songs", s.handleListSongs)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler возвращает HTTP обработчик сервера
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Serve обслуживает запросы до отмены контекста
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(listener)
	}()
	s.logger.Info("server started", "addr", listener.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server stopping")
		return s.server.Shutdown(shutdownCtx)
	}
}

// ListenAndServe слушает адрес из конфигурации до отмены контекста
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// handleIndex отдает страницу с формой и списком
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	page := s.page("", nil)
	s.mu.Unlock()

	s.render(w, http.StatusOK, page)
}

// handleAddSong обрабатывает отправку формы
func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	for _, field := range register.Fields {
		s.form.SetValue(field, r.PostForm.Get(string(field)))
	}
	_, err := s.manager.AddSong()
	if err != nil {
		// Введенные значения возвращаются только этому клиенту,
		// общая форма очищается
		page := s.page(register.AlertMessage(err), r.PostForm)
		s.manager.ClearInputs()
		s.mu.Unlock()
		s.render(w, http.StatusUnprocessableEntity, page)
		return
	}
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleListSongs отдает текущий список в JSON
func (s *Server) handleListSongs(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	lines := s.display.Lines()
	s.mu.Unlock()

	if lines == nil {
		lines = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(lines); err != nil {
		s.logger.Error("encode songs", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// page собирает данные страницы; вызывается под мьютексом.
// submitted - значения отклоненной формы, nil для пустых полей.
func (s *Server) page(alert string, submitted url.Values) pageData {
	values := make(map[string]string, len(register.Fields))
	for _, field := range register.Fields {
		values[string(field)] = submitted.Get(string(field))
	}
	return pageData{
		Title:      s.title,
		DisplayKey: register.DisplayKey,
		Alert:      alert,
		Values:     values,
		Lines:      s.display.Lines(),
	}
}

func (s *Server) render(w http.ResponseWriter, status int, page pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, page); err != nil {
		s.logger.Error("render page", "error", err)
	}
}

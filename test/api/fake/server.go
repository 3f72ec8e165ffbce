/*
Copyright 2026 the CDP Integration Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fake provides an in-memory look-alike of the CDP web service,
// enough of it for the test client and helpers to be exercised without a
// live server.  It knows nothing of the real data model beyond which
// properties contain which.
package fake

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cdp-integration/webservice-tests/test/api"
)

const (
	DefaultUsername = "admin"
	DefaultPassword = "pass"

	// ViewerUsername may read everything and change nothing.
	ViewerUsername = "viewer"
	ViewerPassword = "pass"

	maxUploadMemory = 32 << 20
)

// User is an account known to the fake.
type User struct {
	Password string
	ReadOnly bool
}

// RecordedRequest is what the fake saw of a request.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
}

type Server struct {
	lock       sync.Mutex
	users      map[string]User
	seed       []api.Thing
	seedFiles  map[string][]byte
	store      *store
	requests   []RecordedRequest
	httpServer *httptest.Server
}

type Option func(*Server)

// WithUser adds, or replaces, an account.
func WithUser(username, password string, readOnly bool) Option {
	return func(s *Server) {
		s.users[username] = User{Password: password, ReadOnly: readOnly}
	}
}

// WithDataset replaces the seeded dataset.
func WithDataset(things []api.Thing, files map[string][]byte) Option {
	return func(s *Server) {
		s.seed = things
		s.seedFiles = files
	}
}

// New returns a fake without a listener, use Handler to serve it.
func New(options ...Option) (*Server, error) {
	s := &Server{
		users: map[string]User{
			DefaultUsername: {Password: DefaultPassword},
			ViewerUsername:  {Password: ViewerPassword, ReadOnly: true},
		},
		seed:      Dataset(),
		seedFiles: SeededFiles(),
	}

	for _, option := range options {
		option(s)
	}

	if err := s.Reset(); err != nil {
		return nil, err
	}

	return s, nil
}

// NewServer returns a fake listening on a local port.
func NewServer(options ...Option) (*Server, error) {
	s, err := New(options...)
	if err != nil {
		return nil, err
	}

	s.httpServer = httptest.NewServer(s.Handler())

	return s, nil
}

func (s *Server) URL() string {
	if s.httpServer == nil {
		return ""
	}

	return s.httpServer.URL
}

func (s *Server) Close() {
	if s.httpServer != nil {
		s.httpServer.Close()
	}
}

// Reset returns the dataset to its seeded state.
func (s *Server) Reset() error {
	seeded, err := newStore(s.seed, s.seedFiles)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.store = seeded

	return nil
}

// Thing returns a copy of a stored thing, or nil.
func (s *Server) Thing(iid string) api.Thing {
	s.lock.Lock()
	defer s.lock.Unlock()

	thing, ok := s.store.things[iid]
	if !ok {
		return nil
	}

	out := make(api.Thing, len(thing))
	for k, v := range thing {
		out[k] = v
	}

	return out
}

// File returns stored file content by hash.
func (s *Server) File(hash string) ([]byte, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, ok := s.store.files[hash]

	return data, ok
}

// Requests returns everything the fake has seen so far.
func (s *Server) Requests() []RecordedRequest {
	s.lock.Lock()
	defer s.lock.Unlock()

	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)

	return out
}

// LastRequest returns the most recent request, if any.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}

	return s.requests[len(s.requests)-1], true
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Use(s.authenticate)

	r.Post("/Data/Restore", s.handleRestore)
	r.Post("/export", s.handleExport)

	r.Get("/SiteDirectory", s.handleGet)
	r.Get("/SiteDirectory/*", s.handleGet)
	r.Post("/SiteDirectory/*", s.handlePost)
	r.Get("/EngineeringModel/*", s.handleGet)
	r.Post("/EngineeringModel/*", s.handlePost)

	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
		})
		s.lock.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()

		user, known := s.users[username]
		if !ok || !known || user.Password != password {
			w.Header().Set("WWW-Authenticate", `Basic realm="CDP"`)
			writeText(w, http.StatusUnauthorized, "Unauthorized")

			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), username, user)))
	})
}

func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, message)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeText(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrBadRequest):
		writeText(w, http.StatusBadRequest, err.Error())
	default:
		writeText(w, http.StatusInternalServerError, err.Error())
	}
}

func writeThings(w http.ResponseWriter, things []api.Thing, v version) {
	out := make([]api.Thing, 0, len(things))
	for _, thing := range things {
		out = append(out, v.filter(thing))
	}

	data, err := json.Marshal(out)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func segments(r *http.Request) []string {
	return strings.Split(strings.Trim(r.URL.Path, "/"), "/")
}

func parseList(value string) []string {
	value = strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")

	var out []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

func parseQuery(r *http.Request) (query, error) {
	values := r.URL.Query()

	q := query{
		deep:                 values.Get("extent") == api.ExtentDeep,
		includeAllContainers: values.Get("includeAllContainers") == "true",
		includeReferenceData: values.Get("includeReferenceData") == "true",
		cherryPick:           values.Get("cherryPick") == "true",
		classKinds:           parseList(values.Get("classkind")),
		categories:           parseList(values.Get("category")),
	}

	if raw := values.Get("revisionNumber"); raw != "" {
		revision, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return query{}, fmt.Errorf("%w: invalid revisionNumber %q", ErrBadRequest, raw)
		}

		q.revision = &revision
	}

	return q, nil
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	path := segments(r)

	s.lock.Lock()
	defer s.lock.Unlock()

	if len(path) == 1 {
		writeThings(w, s.store.collect(target{}, s.store.tops(api.ClassKind(path[0])), q), requestedVersion(r))
		return
	}

	t, err := s.store.resolve(path)
	if err != nil {
		writeError(w, err)
		return
	}

	writeThings(w, s.store.get(t, q), requestedVersion(r))
}

// readChangeRequest reads a JSON or multipart change request.  Multipart
// uploads carry files in parts named by their content hash.
func readChangeRequest(r *http.Request) (changeRequest, map[string][]byte, error) {
	var request changeRequest

	var body []byte

	uploads := map[string][]byte{}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return request, nil, fmt.Errorf("%w: invalid multipart body: %w", ErrBadRequest, err)
		}

		manifest := r.MultipartForm.Value[api.MultipartJSONField]
		if len(manifest) != 1 {
			return request, nil, fmt.Errorf("%w: multipart body needs exactly one %s part", ErrBadRequest, api.MultipartJSONField)
		}

		body = []byte(manifest[0])

		for name, headers := range r.MultipartForm.File {
			data, err := readPart(headers[0])
			if err != nil {
				return request, nil, err
			}

			uploads[name] = data
		}
	} else {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return request, nil, fmt.Errorf("reading body: %w", err)
		}

		body = data
	}

	if err := json.Unmarshal(body, &request); err != nil {
		return request, nil, fmt.Errorf("%w: invalid change request: %w", ErrBadRequest, err)
	}

	return request, uploads, nil
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: reading upload: %w", ErrBadRequest, err)
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: reading upload: %w", ErrBadRequest, err)
	}

	return data, nil
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	username, user := userFrom(r.Context())
	path := segments(r)

	if user.ReadOnly {
		writeText(w, http.StatusForbidden, fmt.Sprintf("The person %s does not have an appropriate update permission for %s.", username, path[0]))
		return
	}

	request, uploads, err := readChangeRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	working, err := s.store.clone()
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := working.resolve(path)
	if err != nil {
		writeError(w, err)
		return
	}

	changed, err := working.apply(t, request, uploads)
	if err != nil {
		writeError(w, err)
		return
	}

	s.store = working

	writeThings(w, changed, requestedVersion(r))
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	if err := s.Reset(); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleExport writes a zip holding the site directory and, per requested
// engineering model setup, its model and iterations.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var setupIids []string

	if err := json.NewDecoder(r.Body).Decode(&setupIids); err != nil || len(setupIids) == 0 {
		writeText(w, http.StatusBadRequest, "the export request must list engineering model setups")
		return
	}

	slices.Sort(setupIids)
	setupIids = slices.Compact(setupIids)

	s.lock.Lock()
	defer s.lock.Unlock()

	entries := map[string][]api.Thing{}
	names := []string{"SiteDirectory.json"}

	for _, sd := range s.store.tops(api.ClassKindSiteDirectory) {
		entries["SiteDirectory.json"] = append(entries["SiteDirectory.json"], s.store.collect(target{thing: sd}, []api.Thing{sd}, query{deep: true})...)
	}

	for _, setupIid := range setupIids {
		setup, ok := s.store.things[setupIid]
		if !ok || setup.ClassKind() != api.ClassKindEngineeringModelSetup {
			writeText(w, http.StatusBadRequest, fmt.Sprintf("unknown engineering model setup %s", setupIid))
			return
		}

		modelIid, _ := setup[api.PropertyEngineeringModelIid].(string)

		model, ok := s.store.things[modelIid]
		if !ok {
			writeText(w, http.StatusBadRequest, fmt.Sprintf("engineering model %s does not exist", modelIid))
			return
		}

		name := fmt.Sprintf("EngineeringModels/%s/%s.json", modelIid, modelIid)
		entries[name] = []api.Thing{model}
		names = append(names, name)

		for _, iterationIid := range memberIids(model, api.PropertyIteration) {
			iteration := s.store.things[iterationIid]

			name := fmt.Sprintf("EngineeringModels/%s/Iterations/%s.json", modelIid, iterationIid)
			entries[name] = s.store.collect(target{thing: iteration}, []api.Thing{iteration}, query{deep: true})
			names = append(names, name)
		}
	}

	archive, err := writeArchive(names, entries)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func writeArchive(names []string, entries map[string][]api.Thing) ([]byte, error) {
	var buffer bytes.Buffer

	archive := zip.NewWriter(&buffer)

	header, err := archive.Create("Header.json")
	if err != nil {
		return nil, err
	}

	if err := json.NewEncoder(header).Encode(map[string]any{api.PropertyClassKind: "ExchangeFileHeader"}); err != nil {
		return nil, err
	}

	for _, name := range names {
		entry, err := archive.Create(name)
		if err != nil {
			return nil, err
		}

		if err := json.NewEncoder(entry).Encode(entries[name]); err != nil {
			return nil, err
		}
	}

	if err := archive.Close(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

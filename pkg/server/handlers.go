package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/squaremap/pkg/buildinfo"
	"github.com/matzehuels/squaremap/pkg/dataset"
	"github.com/matzehuels/squaremap/pkg/errors"
	"github.com/matzehuels/squaremap/pkg/pipeline"
	"github.com/matzehuels/squaremap/pkg/store"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// layoutRequest is the body of POST /v1/layouts and POST /v1/render.
type layoutRequest struct {
	Items []dataset.Item `json:"items"`
	pipeline.Options
}

type layoutResponse struct {
	ID     string         `json:"id"`
	Layout dataset.Layout `json:"layout"`
	Stats  statsBody      `json:"stats"`
	Cached bool           `json:"cached"`
}

type statsBody struct {
	Tiles       int     `json:"tiles"`
	Visible     int     `json:"visible"`
	WorstAspect float64 `json:"worst_aspect"`
	MeanAspect  float64 `json:"mean_aspect"`
	Coverage    float64 `json:"coverage"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	items, err := pipeline.PrepareItems(req.Items)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	l, hit, err := s.runner.GenerateLayoutWithCacheInfo(ctx, items, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec := store.New(l.Export(), s.ttl)
	if err := s.store.Save(ctx, rec); err != nil {
		s.writeError(w, r, fmt.Errorf("save layout: %w", err))
		return
	}

	st := l.Stats()
	w.Header().Set("Location", "/v1/layouts/"+rec.ID)
	s.writeJSON(w, http.StatusCreated, layoutResponse{
		ID:     rec.ID,
		Layout: rec.Layout,
		Stats: statsBody{
			Tiles:       st.Tiles,
			Visible:     st.Visible,
			WorstAspect: st.WorstAspect,
			MeanAspect:  st.MeanAspect,
			Coverage:    st.Coverage,
		},
		Cached: hit,
	})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleRenderLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	rec, err := s.store.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l, err := treemap.Parse(rec.Layout)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("stored layout %s: %w", rec.ID, err))
		return
	}

	opts := s.defaults
	opts.Formats = []string{format}
	if err := applyQuery(&opts, r.URL.Query()); err != nil {
		s.writeError(w, r, err)
		return
	}
	artifacts, err := s.runner.Render(ctx, l, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeArtifact(w, pipeline.ContentType(format), artifacts[format])
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	req.Formats = []string{format}
	if err := applyQuery(&req.Options, r.URL.Query()); err != nil {
		s.writeError(w, r, err)
		return
	}
	items, err := pipeline.PrepareItems(req.Items)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(ctx, items, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeArtifact(w, pipeline.ContentType(format), result.Artifacts[format])
}

// decodeRequest reads a layoutRequest seeded with the server defaults.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (layoutRequest, error) {
	req := layoutRequest{Options: s.defaults}
	req.Formats = nil

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return layoutRequest{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return req, nil
}

// applyQuery overrides render options from query parameters.
func applyQuery(opts *pipeline.Options, q url.Values) error {
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v)
		}
		opts.Scale = scale
	}
	if v := q.Get("links"); v != "" {
		links, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "invalid links %q", v)
		}
		opts.Links = links
	}
	return nil
}

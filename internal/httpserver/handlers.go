package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-dynform/pkg/controller"
	"github.com/goliatone/go-dynform/pkg/record"
	"github.com/goliatone/go-dynform/pkg/render"
	"github.com/goliatone/go-dynform/pkg/renderers/vanilla"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = vanilla.Name
	}
	if _, err := s.renderers.Get(format); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("unknown format "+strconv.Quote(format)))
		return
	}
	s.renderView(w, r, http.StatusOK, format, s.ctrl.View())
}

func (s *Server) handleView(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleSelectFormType(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
		return
	}
	s.ctrl.SelectFormType(r.PostForm.Get(render.FormTypeField))
	redirectHome(w, r)
}

func (s *Server) handleSetValues(w http.ResponseWriter, r *http.Request) {
	formType, values, ok := postedValues(w, r)
	if !ok {
		return
	}
	if _, err := s.ctrl.ApplyValues(formType, values); err != nil && !errors.Is(err, controller.ErrNoActiveForm) {
		s.serverError(w, err)
		return
	}
	redirectHome(w, r)
}

// handleSubmit applies the posted values and submits in one controller
// action. A rejected submission re-renders the page with its errors instead
// of redirecting.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	formType, values, ok := postedValues(w, r)
	if !ok {
		return
	}
	view, submitted := s.ctrl.SubmitValues(formType, values)
	if !submitted && view.Editing() {
		s.renderView(w, r, http.StatusUnprocessableEntity, vanilla.Name, view)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleEditRecord(w http.ResponseWriter, r *http.Request) {
	index, ok := recordIndex(w, r)
	if !ok {
		return
	}
	if _, err := s.ctrl.EditRecord(index); err != nil {
		s.recordError(w, r, err)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	index, ok := recordIndex(w, r)
	if !ok {
		return
	}
	if _, err := s.ctrl.DeleteRecord(index); err != nil {
		s.recordError(w, r, err)
		return
	}
	redirectHome(w, r)
}

// postedValues splits a form post into the form type it was typed into and
// its field values. The controller drops names the form does not declare.
func postedValues(w http.ResponseWriter, r *http.Request) (string, map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
		return "", nil, false
	}
	values := make(map[string]string, len(r.PostForm))
	for name := range r.PostForm {
		if name == render.FormTypeField {
			continue
		}
		values[name] = r.PostForm.Get(name)
	}
	return r.PostForm.Get(render.FormTypeField), values, true
}

func (s *Server) renderView(w http.ResponseWriter, r *http.Request, status int, format string, view controller.View) {
	page := render.NewPage(view, s.source, render.WithTitle(s.title), render.WithTheme(s.theme))
	out, contentType, err := s.renderers.Render(r.Context(), format, page)
	if err != nil {
		s.serverError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

func (s *Server) recordError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, record.ErrOutOfRange) {
		s.logger.Warn("record index out of range",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusNotFound, errorBody("record not found"))
		return
	}
	s.serverError(w, err)
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
}

func recordIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("record not found"))
		return 0, false
	}
	return index, true
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/fitness-roadmap/internal/catalog"
	"github.com/jonathan/fitness-roadmap/internal/objectives"
	internalschemas "github.com/jonathan/fitness-roadmap/internal/schemas"
	"github.com/jonathan/fitness-roadmap/internal/server/middleware"
	"github.com/jonathan/fitness-roadmap/internal/types"
	"github.com/jonathan/fitness-roadmap/schemas"
)

// WeeklyStructureRequest is the body of PUT /members/{id}/weekly-structure.
type WeeklyStructureRequest struct {
	Structure []string `json:"structure" validate:"required,min=1,max=6"`
}

// PersonalizationRequest is the body of PUT /members/{id}/personalization.
type PersonalizationRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// WeeklyStructureResponse reports a member's stored override.
type WeeklyStructureResponse struct {
	MemberID  uuid.UUID             `json:"member_id"`
	Structure types.WeeklyStructure `json:"structure"`
}

// PersonalizationResponse reports a member's personalization flag.
type PersonalizationResponse struct {
	MemberID uuid.UUID `json:"member_id"`
	Enabled  bool      `json:"enabled"`
}

// CatalogResponse lists catalog entries.
type CatalogResponse struct {
	Entries []types.CatalogEntry `json:"entries"`
	Count   int                  `json:"count"`
}

// handleListCatalog handles GET /catalog, optionally filtered by level and goal.
func (s *Server) handleListCatalog(w http.ResponseWriter, r *http.Request) {
	level := types.ExperienceLevel(r.URL.Query().Get("level"))
	if level != "" && !level.Valid() {
		s.handleError(w, r, &ErrValidation{Field: "level", Message: "must be beginner, intermediate or advanced"})
		return
	}

	goal := types.Goal(r.URL.Query().Get("goal"))
	if goal != "" {
		if _, ok := objectives.NormalizeGoal(goal); !ok {
			s.handleError(w, r, &ErrValidation{Field: "goal", Message: fmt.Sprintf("unknown goal %q, expected one of %v", goal, objectives.KnownGoals)})
			return
		}
	}

	c, err := s.service.Catalog(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	entries := catalog.Filter(c, level, goal)
	s.jsonResponse(w, http.StatusOK, CatalogResponse{Entries: entries, Count: len(entries)})
}

// handleGetWorkout handles GET /catalog/{id}.
func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		s.handleError(w, r, &ErrValidation{Field: "id", Message: "must be a positive integer"})
		return
	}

	c, err := s.service.Catalog(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	entry, ok := c.Get(id)
	if !ok {
		s.handleError(w, r, &ErrWorkoutNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

// handlePreviewRoadmap handles POST /roadmaps/preview. The profile in the body
// is not stored.
func (s *Server) handlePreviewRoadmap(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.handleError(w, r, &ErrValidation{Field: "body", Message: "could not read request body"})
		return
	}

	var profile types.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		s.handleError(w, r, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := internalschemas.Validate(schemas.Profile, body); err != nil {
		s.handleError(w, r, err)
		return
	}
	if err := profile.Validate(); err != nil {
		s.handleError(w, r, &ErrValidation{Field: "profile", Message: err.Error()})
		return
	}

	result, err := s.service.Preview(r.Context(), &profile)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetRoadmap handles GET /members/{id}/roadmap.
func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	memberID, err := s.authorizedMember(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	result, err := s.service.Generate(r.Context(), memberID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleSetWeeklyStructure handles PUT /members/{id}/weekly-structure.
func (s *Server) handleSetWeeklyStructure(w http.ResponseWriter, r *http.Request) {
	memberID, err := s.authorizedMember(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	var req WeeklyStructureRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	structure := make(types.WeeklyStructure, len(req.Structure))
	for i, label := range req.Structure {
		structure[i] = types.DayLabel(label)
	}

	stored, err := s.service.SetWeeklyStructureOverride(r.Context(), memberID, structure)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, WeeklyStructureResponse{MemberID: memberID, Structure: stored})
}

// handleClearWeeklyStructure handles DELETE /members/{id}/weekly-structure.
func (s *Server) handleClearWeeklyStructure(w http.ResponseWriter, r *http.Request) {
	memberID, err := s.authorizedMember(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	if err := s.service.ClearOverride(r.Context(), memberID); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetPersonalization handles PUT /members/{id}/personalization.
func (s *Server) handleSetPersonalization(w http.ResponseWriter, r *http.Request) {
	memberID, err := s.authorizedMember(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	var req PersonalizationRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	if err := s.service.SetPersonalizationEnabled(r.Context(), memberID, *req.Enabled); err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, PersonalizationResponse{MemberID: memberID, Enabled: *req.Enabled})
}

// authorizedMember parses the {id} path value and checks it against the
// member the token was issued to.
func (s *Server) authorizedMember(r *http.Request) (uuid.UUID, error) {
	memberID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}

	caller, err := middleware.GetMemberID(r)
	if err != nil || caller != memberID {
		return uuid.Nil, &ErrForbiddenMember{MemberID: memberID}
	}
	return memberID, nil
}

// decode reads a JSON body into v and runs struct validation on it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrValidation{Field: "body", Message: "request body is empty"}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	if err := s.validate.Struct(v); err != nil {
		return err
	}
	return nil
}

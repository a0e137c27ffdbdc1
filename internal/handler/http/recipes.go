package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/go-chi/chi/v5"
)

const recipeIDParam = "recipeID"

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.services.RecipeService.ListRecipes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{
		Success: true,
		Count:   len(recipes),
		Data:    recipes,
	}, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), chi.URLParam(r, recipeIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, recipe, http.StatusOK)
}

// createRecipe stores the body as a new recipe of the caller. A "user" key
// in the body is ignored.
func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.RecipeInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.CreateRecipe(r.Context(), caller, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, recipe, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// an empty body is an update that changes nothing
	var update models.RecipeUpdate
	if err = decodeJSON(r, &update); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.UpdateRecipe(r.Context(), caller, chi.URLParam(r, recipeIDParam), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, recipe, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.RecipeService.DeleteRecipe(r.Context(), caller, chi.URLParam(r, recipeIDParam)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, struct{}{}, http.StatusOK)
}

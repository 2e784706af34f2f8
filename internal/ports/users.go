package ports

import (
	"encoding/json"
	"net/http"

	"github.com/Amund211/gridline/internal/app"
)

func MakeCreateOrGetUserHandler(createOrGetUser app.CreateOrGetUser, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("create_or_get_user", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Username string `json:"username"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		user, err := createOrGetUser(ctx, body.Username)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, userToDTO(user))
	}

	return middleware(handler)
}

func MakeListUsersHandler(listUsers app.ListUsers, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("list_users", true, false)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		users, err := listUsers(ctx)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, usersToDTOs(users))
	}

	return middleware(handler)
}

func MakeDeleteUserHandler(deleteUser app.DeleteUser, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("delete_user", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		username := r.PathValue("username")
		if username == "" {
			writeJSONError(w, "Invalid username", http.StatusBadRequest)
			return
		}

		if err := deleteUser(ctx, username); err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}

	return middleware(handler)
}

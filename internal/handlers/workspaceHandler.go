package handlers

import (
	"net/http"

	"github.com/akolanti/lexgate/internal/adapter/utils"
	"github.com/akolanti/lexgate/internal/api"
	"github.com/akolanti/lexgate/internal/navigation"
)

// MenuHandler godoc
// @Summary      Navigation menu
// @Tags         Navigation
// @Produce      json
// @Success      200  {array}  navigation.Group
// @Router       /api/menu [get]
func MenuHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, navigation.Menu())
}

// CreateWorkspaceHandler godoc
// @Summary      Open a workspace
// @Description  A workspace scopes uploaded documents, the chat transcript and open legal api sessions. It plays the role of one page visit.
// @Tags         Workspaces
// @Produce      json
// @Success      201  {object}  api.WorkspaceResponse
// @Router       /api/workspaces [post]
func CreateWorkspaceHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetNewUUID()
	if err := handlerInstance.Documents.CreateWorkspace(r.Context(), id); err != nil {
		logRH.Trace(r.Context()).Error("Couldn't create workspace", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, id, "Storage Error")
		return
	}
	writeJsonResponse(w, http.StatusCreated, api.WorkspaceResponse{Id: id})
}

// DeleteWorkspaceHandler godoc
// @Summary      Close a workspace
// @Description  Removes every document, revokes their previews and clears the transcript.
// @Tags         Workspaces
// @Param        workspaceId  path  string  true  "Workspace ID"
// @Success      204
// @Failure      404  {object}  api.JobResponse  "Workspace not found"
// @Router       /api/workspaces/{workspaceId} [delete]
func DeleteWorkspaceHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	ctx := r.Context()
	workspaceId := utils.GetChiURLParam(r, "workspaceId")
	if !handlerInstance.Documents.WorkspaceExists(ctx, workspaceId) {
		WriteErrorResponse(w, http.StatusNotFound, workspaceId, "Workspace not found")
		return
	}
	if err := handlerInstance.Jobs.RemoveWorkspace(ctx, workspaceId); err != nil {
		logRH.Trace(ctx).Error("Couldn't remove workspace", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, workspaceId, "Storage Error")
		return
	}
	if err := handlerInstance.Chats.Clear(ctx, workspaceId); err != nil {
		logRH.Trace(ctx).Warn("Couldn't clear transcript", "err", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMessagesHandler godoc
// @Summary      Chat transcript
// @Tags         Workspaces
// @Produce      json
// @Param        workspaceId  path  string  true  "Workspace ID"
// @Success      200  {object}  api.MessagesResponse
// @Failure      404  {object}  api.JobResponse  "Workspace not found"
// @Router       /api/workspaces/{workspaceId}/messages [get]
func GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	workspaceId := utils.GetChiURLParam(r, "workspaceId")
	messages, err := handlerInstance.Assistant.History(r.Context(), workspaceId)
	if err != nil {
		writeServiceError(r.Context(), w, workspaceId, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.MessagesResponse{Messages: messages})
}

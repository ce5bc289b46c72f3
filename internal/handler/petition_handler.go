package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/dseu-petition/petition-api/internal/auth"
	"github.com/dseu-petition/petition-api/internal/models"
	"github.com/dseu-petition/petition-api/internal/pdf"
	"github.com/dseu-petition/petition-api/internal/service"
)

type PetitionHandler struct {
	svc      *service.PetitionService
	renderer *pdf.Renderer
}

func NewPetitionHandler(svc *service.PetitionService, renderer *pdf.Renderer) *PetitionHandler {
	return &PetitionHandler{svc: svc, renderer: renderer}
}

// Submit accepts the multipart petition form: text fields plus the three
// document files (profilePhoto, signaturePhoto, aadharCard).
func (h *PetitionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid user id")
		return
	}

	// Three files at 5MB each plus form fields
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "multipart form required")
		return
	}

	in := service.SubmissionInput{
		FullName:           r.FormValue("fullName"),
		CollegeName:        r.FormValue("collegeName"),
		RollNumber:         r.FormValue("rollNumber"),
		PhoneNumber:        r.FormValue("phoneNumber"),
		Email:              r.FormValue("email"),
		ProblemDescription: r.FormValue("problem"),
	}
	in.ProfilePhoto = formFile(r, "profilePhoto")
	in.SignaturePhoto = formFile(r, "signaturePhoto")
	in.AadharCard = formFile(r, "aadharCard")

	petition, err := h.svc.Submit(r.Context(), userID, in)
	if err != nil {
		log.Printf("Warning: failed to submit petition for %s: %v", claims.Email, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, petition)
}

func (h *PetitionHandler) Mine(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid user id")
		return
	}
	petition, err := h.svc.Latest(r.Context(), userID)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, petition)
}

func (h *PetitionHandler) MinePDF(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid user id")
		return
	}
	petition, err := h.svc.Latest(r.Context(), userID)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	servePetitionPDF(w, r, h.renderer, petition)
}

func formFile(r *http.Request, name string) service.FileUpload {
	f, fh, err := r.FormFile(name)
	if err != nil {
		return service.FileUpload{}
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return service.FileUpload{}
	}
	return service.FileUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}
}

// servePetitionPDF renders and streams the petition document.
func servePetitionPDF(w http.ResponseWriter, r *http.Request, renderer *pdf.Renderer, petition *models.Petition) {
	data, err := renderer.Render(r.Context(), petition)
	if err != nil {
		log.Printf("Warning: failed to generate PDF for petition %s: %v", petition.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="petition-%s.pdf"`, petition.ID))
	w.Write(data)
}

package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shoyeb45/u-tube/internal/logger"
	"github.com/Shoyeb45/u-tube/internal/models"
)

// multipartMemory is the part of a multipart body kept in memory before
// spilling to disk.
const multipartMemory = 8 << 20

// NewRegisterHandler returns an HTTP handler for user registration.
// Uploaded files are written to tempDir and removed once the request ends.
// @Summary Register a new user
// @Description Creates a new user account from a multipart form. Username and email must be unique, avatar is required.
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param fullname formData string true "Full name"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} models.APIResponse{data=models.User} "User registered"
// @Failure 400 {object} models.APIErrorResponse "Missing fields or avatar"
// @Failure 409 {object} models.APIErrorResponse "Username or email already exists"
// @Failure 500 {object} models.APIErrorResponse "Internal server error"
// @Router /user/register [post]
func NewRegisterHandler(svc Registerer, tempDir string) http.HandlerFunc {
	return Wrap(func(w http.ResponseWriter, r *http.Request) error {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return badRequest("Invalid multipart form")
		}
		defer r.MultipartForm.RemoveAll()

		var paths []string
		defer func() {
			for _, p := range paths {
				if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
					logger.Log.Warnw("failed to remove temp upload", "path", p, "err", err)
				}
			}
		}()

		save := func(field string) (string, error) {
			path, err := saveFormFile(r, field, tempDir)
			if path != "" {
				paths = append(paths, path)
			}
			return path, err
		}

		avatarPath, err := save("avatar")
		if err != nil {
			return err
		}
		coverPath, err := save("coverImage")
		if err != nil {
			return err
		}

		user, err := svc.Register(r.Context(), models.RegisterInput{
			Username:       r.FormValue("username"),
			Email:          r.FormValue("email"),
			Password:       r.FormValue("password"),
			FullName:       r.FormValue("fullname"),
			AvatarPath:     avatarPath,
			CoverImagePath: coverPath,
		})
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusCreated, user, "User registered successfully")
		return nil
	})
}

// saveFormFile copies the first file of field into dir. It returns an empty
// path when the field is absent.
func saveFormFile(r *http.Request, field, dir string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", badRequest("Invalid " + field + " file")
	}
	defer file.Close()

	return copyToTemp(file, header, dir)
}

func copyToTemp(src multipart.File, header *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(header.Filename)))

	dst, err := os.CreateTemp(dir, "upload-*"+ext)
	if err != nil {
		logger.Log.Errorw("failed to create temp upload", "dir", dir, "err", err)
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		logger.Log.Errorw("failed to store temp upload", "path", dst.Name(), "err", err)
		return dst.Name(), err
	}
	return dst.Name(), nil
}

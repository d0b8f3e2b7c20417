package delivery

import (
	"errors"
	"os"
	"path/filepath"

	"contacts/config"
	"contacts/domain"
	"contacts/services/contact/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const templateCSV = "first_name,last_name,email,age\n"

type contactHandler struct {
	uc        domain.ContactUseCase
	uploadDir string
}

func NewContactHandler(app *fiber.App, useCase domain.ContactUseCase, uploadDir string) {
	handler := &contactHandler{
		uc:        useCase,
		uploadDir: uploadDir,
	}

	route := app.Group("/contacts")
	route.Post("/", handler.SubmitContact)
	route.Post("/import", handler.UploadAndImport)
	route.Get("/", handler.GetAllContacts)
	route.Get("/template", handler.DownloadTemplate)
	route.Get("/:email", handler.GetContactByEmail)
}

func (ch *contactHandler) SubmitContact(c *fiber.Ctx) error {
	ip := c.IP()

	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		config.PrintLogInfo(&ip, fiber.StatusBadRequest, "SubmitContact")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	candidate := domain.Candidate{
		FirstName:   pickField(body, "first_name", "firstName", "FirstName"),
		LastName:    pickField(body, "last_name", "lastName", "LastName"),
		Email:       pickField(body, "email", "Email"),
		PhoneNumber: pickFieldPtr(body, "phone_number", "phoneNumber", "PhoneNumber"),
		Eircode:     pickFieldPtr(body, "eircode", "Eircode"),
	}

	contact, result, err := ch.uc.SubmitContact(c.Context(), candidate)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateContact) {
			config.PrintLogInfo(&ip, fiber.StatusConflict, "SubmitContact")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Contact with this email already exists",
			})
		}
		config.PrintLogInfo(&ip, fiber.StatusInternalServerError, "SubmitContact")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to save contact",
		})
	}

	if !result.Valid {
		config.PrintLogInfo(&ip, fiber.StatusBadRequest, "SubmitContact")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  result.Violations,
		})
	}

	config.PrintLogInfo(&ip, fiber.StatusCreated, "SubmitContact")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Contact saved successfully",
		"data":    contact,
	})
}

func (ch *contactHandler) UploadAndImport(c *fiber.Ctx) error {
	ip := c.IP()
	log := config.GetLogrusInstance()

	file, err := c.FormFile("file")
	if err != nil {
		config.PrintLogInfo(&ip, fiber.StatusBadRequest, "UploadAndImport")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to parse file",
		})
	}

	if _, err := os.Stat(ch.uploadDir); os.IsNotExist(err) {
		if err := os.MkdirAll(ch.uploadDir, os.ModePerm); err != nil {
			config.PrintLogInfo(&ip, fiber.StatusInternalServerError, "UploadAndImport")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to create upload directory",
			})
		}
	}

	filePath := filepath.Join(ch.uploadDir, uploadFileName(file.Filename))
	if err := c.SaveFile(file, filePath); err != nil {
		config.PrintLogInfo(&ip, fiber.StatusBadRequest, "UploadAndImport")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to save file",
		})
	}

	upload, err := os.Open(filePath)
	if err != nil {
		config.PrintLogInfo(&ip, fiber.StatusInternalServerError, "UploadAndImport")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to open uploaded file",
		})
	}
	// the upload is released whatever the pipeline outcome
	defer func() {
		upload.Close()
		if err := os.Remove(filePath); err != nil {
			log.Warnf("Failed to delete uploaded file %s: %v", filePath, err)
		}
	}()

	summary, err := ch.uc.ImportCSV(c.Context(), upload)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidHeader) {
			config.PrintLogInfo(&ip, fiber.StatusBadRequest, "UploadAndImport")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Unrecognized batch file format",
			})
		}
		config.PrintLogInfo(&ip, fiber.StatusInternalServerError, "UploadAndImport")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to process batch file",
		})
	}

	config.PrintLogInfo(&ip, fiber.StatusOK, "UploadAndImport")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "File processed successfully",
		"data":    summary,
	})
}

func (ch *contactHandler) GetAllContacts(c *fiber.Ctx) error {
	ip := c.IP()

	contacts, err := ch.uc.GetAllContacts(c.Context())
	if err != nil {
		config.PrintLogInfo(&ip, fiber.StatusInternalServerError, "GetAllContacts")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get contacts",
		})
	}

	config.PrintLogInfo(&ip, fiber.StatusOK, "GetAllContacts")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Contacts retrieved successfully",
		"data":    contacts,
	})
}

func (ch *contactHandler) GetContactByEmail(c *fiber.Ctx) error {
	ip := c.IP()

	email := c.Params("email")

	contact, err := ch.uc.GetContactByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			config.PrintLogInfo(&ip, fiber.StatusNotFound, "GetContactByEmail")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Contact not found",
			})
		}
		config.PrintLogInfo(&ip, fiber.StatusInternalServerError, "GetContactByEmail")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get contact",
		})
	}

	config.PrintLogInfo(&ip, fiber.StatusOK, "GetContactByEmail")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Contact retrieved successfully",
		"data":    contact,
	})
}

func (ch *contactHandler) DownloadTemplate(c *fiber.Ctx) error {
	ip := c.IP()

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contacts_template.csv"`)
	c.Set(fiber.HeaderContentType, "text/csv")

	config.PrintLogInfo(&ip, fiber.StatusOK, "DownloadTemplate")
	return c.SendString(templateCSV)
}

// uploadFileName builds a unique name for the saved upload, so
// concurrent imports of files sharing a name cannot collide or delete
// each other mid-processing.
func uploadFileName(original string) string {
	return uuid.New().String() + "_" + filepath.Base(original)
}

// pickField returns the first of the given keys present in the body,
// the boundary accepts snake_case and camelCase field names.
func pickField(body map[string]string, keys ...string) string {
	for _, key := range keys {
		if v, ok := body[key]; ok {
			return v
		}
	}
	return ""
}

func pickFieldPtr(body map[string]string, keys ...string) *string {
	for _, key := range keys {
		if v, ok := body[key]; ok {
			return &v
		}
	}
	return nil
}

package submission

import (
	"mime"
	"strings"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/gabriel-vasile/mimetype"
)

// MaxResumeBytes is the largest resume accepted for upload.
const MaxResumeBytes = 5 << 20

// ResumeTypes are the accepted resume content types.
var ResumeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type ResumeFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// CheckResume rejects files that are too large or not a PDF or Word
// document. When ContentType is empty the type is sniffed from Content.
func CheckResume(f ResumeFile) error {
	if len(f.Content) == 0 {
		return apperror.New(apperror.KindUpload, "Please select a resume file")
	}
	if len(f.Content) > MaxResumeBytes {
		return apperror.New(apperror.KindUpload, "File size must be less than 5MB")
	}
	if !AllowedResumeType(f.ContentType, f.Content) {
		return apperror.New(apperror.KindUpload, "Please upload a PDF or Word document")
	}
	return nil
}

// AllowedResumeType checks a declared content type, or the sniffed type of
// content when none is declared. A declared type is decisive: content is not
// sniffed to overrule it.
func AllowedResumeType(declared string, content []byte) bool {
	if declared != "" {
		mt, _, err := mime.ParseMediaType(declared)
		if err != nil {
			return false
		}
		for _, t := range ResumeTypes {
			if strings.EqualFold(mt, t) {
				return true
			}
		}
		return false
	}
	detected := mimetype.Detect(content)
	for _, t := range ResumeTypes {
		if detected.Is(t) {
			return true
		}
	}
	return false
}

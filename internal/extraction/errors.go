package extraction

import "fmt"

// UnsupportedFormatError indicates the declared content type is not one the
// checker can extract text from.
type UnsupportedFormatError struct {
	MIME string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q. Please upload DOCX or PDF files", e.MIME)
}

// FileTooLargeError indicates the input exceeded the size limit. Raised
// before any parsing is attempted.
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("PDF file is too large (%d bytes, max %d). Please use a smaller file", e.Size, e.Limit)
}

// ImageOnlyPDFError indicates the PDF's text layer was too sparse to be
// useful: pages were read but almost no text survived. Most likely a
// scanned image PDF.
type ImageOnlyPDFError struct {
	Extracted int
}

func (e *ImageOnlyPDFError) Error() string {
	return fmt.Sprintf("PDF text extraction was incomplete (%d usable characters). The file may be image-based. Try saving as DOCX or paste text manually", e.Extracted)
}

// EmptyDocumentError indicates a DOCX yielded too little text to analyze.
type EmptyDocumentError struct {
	Extracted int
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document appears to be empty or could not be read (%d characters extracted)", e.Extracted)
}

// InsufficientContentError indicates the normalized text is below the
// minimum viable analysis input.
type InsufficientContentError struct {
	Length int
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf("could not extract enough text (%d characters). Try copying and pasting the text instead", e.Length)
}

// ExtractionError wraps an underlying parser fault.
type ExtractionError struct {
	Stage string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s processing failed: %v", e.Stage, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

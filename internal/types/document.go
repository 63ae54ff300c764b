package types

// Format identifies a supported input document type. The set is closed:
// dispatch on Format must handle every constant here.
type Format string

const (
	FormatPDF       Format = "pdf"
	FormatDOCX      Format = "docx"
	FormatPlainText Format = "txt"
)

// MIME types accepted by the upload surface.
const (
	MIMEPDF       = "application/pdf"
	MIMEDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEPlainText = "text/plain"
)

// RawDocument is the transient input to one extraction call: the uploaded
// bytes plus the declared format. It is not retained after normalization.
type RawDocument struct {
	Data   []byte
	Format Format
}

// Size returns the document size in bytes.
func (d RawDocument) Size() int64 {
	return int64(len(d.Data))
}

// NormalizedText is the single cleaned plain-text form produced from a
// RawDocument, and the sole input to scoring. Immutable once produced.
type NormalizedText struct {
	Content      string
	SourceLength int
}

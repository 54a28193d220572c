package propset

import (
	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/onestore"
)

func jcidMismatch(got, want onestore.JcID) error {
	return errs.Newf(errs.MalformedOneNoteFile, "unexpected object schema: got JcID 0x%04X, want 0x%04X", got, want)
}

func missing(field string) error {
	return errs.Newf(errs.MalformedOneNoteFile, "missing required property: %s", field)
}

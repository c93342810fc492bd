// file: internals/features/school/scheduling/service/verdict.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

/* =======================================================
   Verdict — hasil dry-run penempatan.
   Konflik = memblokir; warning = advisory saja.
   Bentuk payload stabil (dipakai langsung oleh frontend grid).
   ======================================================= */

type ConflictType string

const (
	ConflictTeacher  ConflictType = "teacher"
	ConflictRoom     ConflictType = "room"
	ConflictHomeroom ConflictType = "homeroom"
)

type WarningType string

const (
	WarningDuplicateClass WarningType = "duplicate_class"
)

type Conflict struct {
	Type    ConflictType `json:"type"`
	Message string       `json:"message"`

	// Session/duty yang bentrok, untuk deep-link dari UI (jika ada)
	SessionID *uuid.UUID `json:"session_id,omitempty"`
	DutyID    *uuid.UUID `json:"duty_id,omitempty"`
}

type Warning struct {
	Type    WarningType `json:"type"`
	Message string      `json:"message"`
	Count   int         `json:"count,omitempty"`
}

type Verdict struct {
	Valid     bool       `json:"valid"`
	Conflicts []Conflict `json:"conflicts"`
	Warnings  []Warning  `json:"warnings"`
}

/* =======================================================
   Error taxonomy.
   Konflik BUKAN error pada saat dry-run; error hanya untuk
   referensi hilang / request cacat / kegagalan store.
   ======================================================= */

// ErrNotFound: class/session/block/room yang direferensikan tidak ada (kesalahan caller)
var ErrNotFound = errors.New("referensi tidak ditemukan")

// BadRequestError: operasi cacat, ditolak sebelum menyentuh store
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string { return e.Msg }

// ConflictError: aturan penjadwalan dilanggar saat commit; seluruh batch di-rollback
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	msgs := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		msgs = append(msgs, c.Message)
	}
	return strings.Join(msgs, "; ")
}

// StoreFailureError: transaksi ditolak store (mis. unique violation yang
// lolos dari pemeriksaan aplikasi); batch sudah di-rollback penuh
type StoreFailureError struct {
	Msg string
	Err error
}

func (e *StoreFailureError) Error() string { return e.Msg }
func (e *StoreFailureError) Unwrap() error { return e.Err }

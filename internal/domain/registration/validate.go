package registration

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

// RegistrationWindowDays is the legal deadline, in days after the birth,
// for registering a newborn. Records older than the window are also the
// ones eligible for the retention purge.
const RegistrationWindowDays = 45

const (
	minPlausibleYear = 1900

	minNameLen = 2
	maxNameLen = 100

	dateLayout = "2006-01-02"
)

// validateIdentity checks that id is pure digits of the exact length the
// document type mandates. The returned FieldError has no Field set; the
// caller stamps it with the parent field name.
func validateIdentity(id string, docType DocumentType) *FieldError {
	if !docType.Valid() {
		return &FieldError{
			Code:    CodeUnknownDocumentType,
			Message: fmt.Sprintf("document type must be %q or %q", DocumentUnified, DocumentCivilStatus),
		}
	}
	if id == "" {
		return &FieldError{Code: CodeNotNumeric, Message: "identity number must contain digits only"}
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return &FieldError{Code: CodeNotNumeric, Message: "identity number must contain digits only"}
		}
	}
	if want := docType.IDLength(); len(id) != want {
		return &FieldError{
			Code:    CodeLengthMismatch,
			Message: fmt.Sprintf("%s identity number must be exactly %d digits", docType, want),
		}
	}
	return nil
}

// validateName checks that name is 2-100 characters drawn from the Arabic
// Unicode block plus whitespace. Names are stored as submitted; no
// normalization is applied.
func validateName(name string) *FieldError {
	n := utf8.RuneCountInString(name)
	if n < minNameLen || n > maxNameLen {
		return &FieldError{
			Code:    CodeInvalidScript,
			Message: fmt.Sprintf("name must be %d-%d Arabic characters", minNameLen, maxNameLen),
		}
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		if r < 0x0600 || r > 0x06FF {
			return &FieldError{
				Code:    CodeInvalidScript,
				Message: "name must contain Arabic letters and spaces only",
			}
		}
	}
	return nil
}

// validateBirthDate parses text as a YYYY-MM-DD calendar date and checks it
// against calendar sanity and the registration window, evaluated at now.
func validateBirthDate(text string, now time.Time) (time.Time, *FieldError) {
	date, err := time.Parse(dateLayout, text)
	if err != nil {
		return time.Time{}, &FieldError{
			Code:    CodeMalformedDate,
			Message: "birth date must be a valid YYYY-MM-DD date",
		}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return time.Time{}, &FieldError{
			Code:    CodeFutureDate,
			Message: "birth date cannot be in the future",
		}
	}
	if date.Year() < minPlausibleYear {
		return time.Time{}, &FieldError{
			Code:    CodeImplausibleDate,
			Message: "birth date is not plausible",
		}
	}
	if int(today.Sub(date)/(24*time.Hour)) > RegistrationWindowDays {
		return time.Time{}, &FieldError{
			Code:    CodeWindowExceeded,
			Message: fmt.Sprintf("births must be registered within %d days", RegistrationWindowDays),
		}
	}
	return date, nil
}

// ValidateRequest runs every field validator over req and collects all
// violations rather than stopping at the first. Each parent's identity is
// checked against that parent's declared document type. A normalized,
// un-persisted BirthRecord is returned only when no violation was found.
func ValidateRequest(req RawBirthRequest, now time.Time) (*BirthRecord, ValidationErrors) {
	var errs ValidationErrors

	collect := func(field string, fe *FieldError) {
		if fe != nil {
			fe.Field = field
			errs = append(errs, *fe)
		}
	}

	fatherType := DocumentType(req.FatherIDType)
	motherType := DocumentType(req.MotherIDType)
	collect("father_id", validateIdentity(req.FatherID, fatherType))
	collect("mother_id", validateIdentity(req.MotherID, motherType))
	collect("father_name", validateName(req.FatherName))
	collect("mother_name", validateName(req.MotherName))
	collect("hospital_name", validateName(req.HospitalName))

	birthDate, fe := validateBirthDate(req.BirthDate, now)
	collect("birth_date", fe)

	if len(errs) > 0 {
		return nil, errs
	}
	return &BirthRecord{
		FatherID:     req.FatherID,
		FatherIDType: fatherType,
		FatherName:   req.FatherName,
		MotherID:     req.MotherID,
		MotherIDType: motherType,
		MotherName:   req.MotherName,
		HospitalName: req.HospitalName,
		BirthDate:    birthDate,
	}, nil
}

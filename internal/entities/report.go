package entities

import "strings"

const maxCommentLength = 50

// ReportUpdate lists the report attributes that may change.
type ReportUpdate struct {
	Comment *string `json:"comment"`
}

type Report struct {
	Base
	Comment string
}

type ReportRecord struct {
	Base
	Comment string `json:"comment"`
}

// NewReport builds a report from a comment that is non-blank and at most
// 50 characters long.
func NewReport(comment string) (*Report, error) {
	if err := validateComment(comment); err != nil {
		return nil, err
	}
	return &Report{Base: newBase(), Comment: comment}, nil
}

func validateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return NewValueError("comment", "comment cannot be empty")
	}
	return validateString("comment", comment, maxCommentLength)
}

func (r *Report) Update(req ReportUpdate) error {
	if req.Comment != nil {
		if err := validateComment(*req.Comment); err != nil {
			return err
		}
		r.Comment = *req.Comment
	}
	r.Touch()
	return nil
}

func (r *Report) Clone() *Report {
	c := *r
	return &c
}

func (r *Report) Record() ReportRecord {
	return ReportRecord{Base: r.Base, Comment: r.Comment}
}

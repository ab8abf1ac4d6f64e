package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/uelms-project/uelms/internal/common"
	"github.com/uelms-project/uelms/internal/server/models"
)

// SubmitRecheck prompts for the details of a result re-evaluation request
// and files it for the logged-in student. Resubmitting for the same exam
// replaces the earlier request and puts it back under review.
func (a *App) SubmitRecheck(ctx context.Context) error {
	if a.account == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return common.ErrorUnauthorized
	}

	regNo := a.account.RegistrationNo
	if regNo == "" {
		// Admins and teachers file on behalf of a student.
		var err error
		regNo, err = GetSimpleText(a.reader, "Enter student registration no", a.out)
		if err != nil {
			return err
		}
	}

	subject, err := GetSimpleText(a.reader, "Enter subject code", a.out)
	if err != nil {
		return err
	}
	semester, err := a.promptInt("Enter semester (1-12)")
	if err != nil {
		return err
	}
	year, err := a.promptInt("Enter exam year")
	if err != nil {
		return err
	}
	reason, err := GetSimpleText(a.reader, "Enter reason (optional)", a.out)
	if err != nil {
		return err
	}

	req, err := a.backend.Rechecks.Submit(ctx, regNo, subject, semester, year, reason)
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Request #%d filed, status %s.\n", req.RequestID, req.Status)
	return nil
}

// MyRechecks lists the logged-in student's recheck requests, newest first.
func (a *App) MyRechecks(ctx context.Context) error {
	if a.account == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return common.ErrorUnauthorized
	}

	regNo := a.account.RegistrationNo
	if regNo == "" {
		var err error
		regNo, err = GetSimpleText(a.reader, "Enter student registration no", a.out)
		if err != nil {
			return err
		}
	}

	reqs, err := a.backend.Rechecks.ForStudent(ctx, regNo)
	if err != nil {
		a.reportError(err)
		return err
	}

	a.printRechecks(reqs)
	return nil
}

// PendingRechecks lists requests awaiting review. Admin only.
func (a *App) PendingRechecks(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "Admin access required.")
		return common.ErrorUnauthorized
	}

	reqs, err := a.backend.Rechecks.PendingForReview(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	a.printRechecks(reqs)
	return nil
}

// DecideRecheck records an admin's decision on a pending request.
func (a *App) DecideRecheck(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "Admin access required.")
		return common.ErrorUnauthorized
	}

	id, err := a.promptInt("Enter request id")
	if err != nil {
		return err
	}
	status, err := GetSimpleText(a.reader, "Enter decision (Approved or Rejected)", a.out)
	if err != nil {
		return err
	}
	comment, err := GetSimpleText(a.reader, "Enter comment (optional)", a.out)
	if err != nil {
		return err
	}

	if err := a.backend.Rechecks.Decide(ctx, int64(id), status, comment); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Request #%d marked %s.\n", id, status)
	return nil
}

func (a *App) promptInt(prompt string) (int, error) {
	text, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintf(a.out, "Not a number: %q\n", text)
		return 0, fmt.Errorf("%w: expected a number, got %q", common.ErrorValidation, text)
	}
	return n, nil
}

func (a *App) printRechecks(reqs []*models.RecheckRequest) {
	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "No requests.")
		return
	}
	for _, r := range reqs {
		fmt.Fprintf(a.out, "#%d  %s  %s sem %d/%d  %s  %s\n",
			r.RequestID, r.RegistrationNo, r.SubjectCode, r.Semester, r.ExamYear,
			r.Status, r.RequestDate.Format("2006-01-02"))
		if r.Reason != "" {
			fmt.Fprintf(a.out, "    reason: %s\n", r.Reason)
		}
		if r.AdminComment != "" {
			fmt.Fprintf(a.out, "    comment: %s\n", r.AdminComment)
		}
	}
}

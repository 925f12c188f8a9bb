package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/avolkov/hirelink/internal/models"
)

// canManageJobs reports whether the signed-in role may manage postings.
func (a *App) canManageJobs() bool {
	switch a.currentRole() {
	case models.RoleAdmin, models.RoleHR:
		return true
	}
	return false
}

// Jobs lists the organization's postings. Arguments are key=value filters:
// search=<term>, sort=<field>, order=<asc|desc>, page=<n>, limit=<n>.
func (a *App) Jobs(ctx context.Context, args []string) error {
	if !a.canManageJobs() {
		fmt.Fprintln(a.out, "Admins and HR only.")
		return nil
	}

	q, err := parseJobQuery(args)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}

	page, err := a.api.Jobs(ctx, q)
	if err != nil {
		fmt.Fprintf(a.out, "Listing failed: %s\n", err)
		return err
	}

	if len(page.Jobs) == 0 {
		fmt.Fprintln(a.out, "No jobs.")
		return nil
	}
	for _, j := range page.Jobs {
		line := fmt.Sprintf("[%s] %s", j.ID, j.Title)
		if j.Location != "" {
			line += " @ " + j.Location
		}
		if j.Openings > 0 {
			line += fmt.Sprintf(" (%d openings)", j.Openings)
		}
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintf(a.out, "Page %d, %d total\n", page.Page, page.Total)
	return nil
}

// AddJob prompts for the posting fields and creates it.
func (a *App) AddJob(ctx context.Context, args []string) error {
	if !a.canManageJobs() {
		fmt.Fprintln(a.out, "Admins and HR only.")
		return nil
	}

	job, err := a.promptJob(models.Job{})
	if err != nil {
		return err
	}

	created, err := a.api.CreateJob(ctx, job)
	if err != nil {
		fmt.Fprintf(a.out, "Create failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Created job %s.\n", created.ID)
	return nil
}

// EditJob re-prompts the fields of an existing posting and updates it.
// Empty answers leave the field unset and unchanged by the server.
func (a *App) EditJob(ctx context.Context, args []string) error {
	if !a.canManageJobs() {
		fmt.Fprintln(a.out, "Admins and HR only.")
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: editjob <id>")
		return nil
	}

	job, err := a.promptJob(models.Job{ID: args[0]})
	if err != nil {
		return err
	}

	updated, err := a.api.UpdateJob(ctx, job)
	if err != nil {
		fmt.Fprintf(a.out, "Update failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Updated job %s.\n", updated.ID)
	return nil
}

// DeleteJob removes a posting after confirmation.
func (a *App) DeleteJob(ctx context.Context, args []string) error {
	if !a.canManageJobs() {
		fmt.Fprintln(a.out, "Admins and HR only.")
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: deljob <id>")
		return nil
	}

	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete job %s?", args[0]), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.DeleteJob(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "Delete failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

func (a *App) promptJob(job models.Job) (models.Job, error) {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return job, err
	}
	if title != "" {
		job.Title = title
	}

	desc, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return job, err
	}
	if desc != "" {
		job.Description = desc
	}

	loc, err := getSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return job, err
	}
	if loc != "" {
		job.Location = loc
	}

	openings, err := getSimpleText(a.reader, "Openings", a.out)
	if err != nil {
		return job, err
	}
	if openings != "" {
		n, err := strconv.Atoi(openings)
		if err != nil {
			return job, fmt.Errorf("openings: %w", err)
		}
		job.Openings = n
	}

	return job, nil
}

func parseJobQuery(args []string) (models.JobQuery, error) {
	var q models.JobQuery
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			// A bare term is a search filter.
			q.Search = arg
			continue
		}
		switch key {
		case "search":
			q.Search = value
		case "sort":
			q.SortBy = value
		case "order":
			q.SortOrder = value
		case "page":
			n, err := strconv.Atoi(value)
			if err != nil {
				return q, fmt.Errorf("page: %w", err)
			}
			q.Page = n
		case "limit":
			n, err := strconv.Atoi(value)
			if err != nil {
				return q, fmt.Errorf("limit: %w", err)
			}
			q.Limit = n
		default:
			return q, fmt.Errorf("unknown filter %q", key)
		}
	}
	return q, nil
}

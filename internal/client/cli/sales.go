package cli

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/preview"
	"github.com/dmitrijs2005/salesdesk/internal/client/state"
)

// Select picks the sales file to upload. Quoted or escaped paths, as pasted
// by terminals on drag-and-drop, are accepted.
func (a *App) Select(ctx context.Context, path string) error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return nil
	}
	a.apply(a.ctrl.SelectFile(path))
	a.println(a.state.Upload.Message)
	return nil
}

// Upload sends the selected file and prints the preview of the result.
func (a *App) Upload(ctx context.Context) error {
	switch {
	case !a.isLoggedIn():
		a.println("Please log in first.")
		return nil
	case !a.state.Upload.HasFile():
		a.println("No file selected. Use: select <path>")
		return nil
	case !a.state.CanUpload():
		return nil
	}

	a.apply(state.UploadSubmitted{})
	a.println(a.state.Upload.Message)

	a.apply(a.ctrl.UploadAndClean(ctx, a.state.Upload))
	a.println(a.state.Upload.Message)

	if a.state.Dataset != nil {
		_ = a.Preview(ctx)
	}
	return nil
}

// Preview prints the first rows of the cleaned data followed by any mapping
// errors.
func (a *App) Preview(ctx context.Context) error {
	if a.state.Dataset == nil {
		a.println("Nothing to preview. Upload a file first.")
		return nil
	}

	t := preview.Build(a.state.Dataset, a.config.PreviewRows)
	if len(t.Columns) > 0 {
		a.println(renderTable(t))
	}
	a.println(t.Caption())

	if len(t.Errors) > 0 {
		a.println()
		_ = a.Errors(ctx)
	}
	return nil
}

// Errors lists the mapping errors of the last upload, one per line.
func (a *App) Errors(ctx context.Context) error {
	if a.state.Dataset == nil {
		a.println("Nothing uploaded yet.")
		return nil
	}
	if len(a.state.Dataset.Errors) == 0 {
		a.println("No mapping errors.")
		return nil
	}

	a.println(renderErrors(a.state.Dataset.Errors))
	return nil
}

// Dashboard prints the link to the hosted dashboard.
func (a *App) Dashboard(ctx context.Context) error {
	a.printf("Dashboard: %s\n", a.config.DashboardURL)
	return nil
}

package vanilla

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-dynform/pkg/render"
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/widgets"
)

type pageContext struct {
	Title        string               `json:"title"`
	Stylesheet   string               `json:"stylesheet"`
	ThemeName    string               `json:"theme_name,omitempty"`
	ThemeVariant string               `json:"theme_variant,omitempty"`
	ThemeStyle   string               `json:"theme_style,omitempty"`
	Actions      actionsContext       `json:"actions"`
	FormTypes    []optionContext      `json:"form_types"`
	Editing      bool                 `json:"editing"`
	FormType     string               `json:"form_type"`
	Fields       []fieldContext       `json:"fields"`
	Hidden       []render.HiddenField `json:"hidden"`
	Progress     int                  `json:"progress"`
	ProgressBar  string               `json:"progress_bar"`
	Feedback     string               `json:"feedback,omitempty"`
	ErrorCount   int                  `json:"error_count"`
	Tables       []tableContext       `json:"tables"`
}

type actionsContext struct {
	SelectForm string `json:"select_form"`
	SetValues  string `json:"set_values"`
	Submit     string `json:"submit"`
}

type optionContext struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type fieldContext struct {
	Name        string          `json:"name"`
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Widget      string          `json:"widget"`
	InputType   string          `json:"input_type"`
	Choice      bool            `json:"choice"`
	Required    bool            `json:"required"`
	Value       string          `json:"value"`
	Error       string          `json:"error,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	HelpHTML    string          `json:"help_html,omitempty"`
	Options     []optionContext `json:"options,omitempty"`
}

type tableContext struct {
	FormType string          `json:"form_type"`
	Columns  []render.Column `json:"columns"`
	Rows     []rowContext    `json:"rows"`
}

type rowContext struct {
	Index        int      `json:"index"`
	ID           string   `json:"id"`
	Cells        []string `json:"cells"`
	EditAction   string   `json:"edit_action"`
	DeleteAction string   `json:"delete_action"`
}

func (r *Renderer) buildContext(page render.Page) (pageContext, error) {
	view := page.View
	ctx := pageContext{
		Title:      page.Title,
		Stylesheet: r.routes.stylesheet(),
		Actions: actionsContext{
			SelectForm: r.routes.SelectForm,
			SetValues:  r.routes.SetValues,
			Submit:     r.routes.Submit,
		},
		Editing:     view.Editing(),
		FormType:    view.FormType,
		Hidden:      page.Hidden,
		Progress:    view.ProgressPercent,
		ProgressBar: strconv.FormatFloat(view.Progress, 'f', 2, 64) + "%",
		Feedback:    view.Feedback,
		ErrorCount:  len(view.Errors),
	}
	if ctx.Title == "" {
		ctx.Title = render.DefaultTitle
	}

	if cfg := page.Theme; cfg != nil {
		ctx.ThemeName = cfg.Theme
		ctx.ThemeVariant = cfg.Variant
		ctx.ThemeStyle = render.CSSVarsStyle(cfg.CSSVars)
		if cfg.AssetURL != nil {
			if href := cfg.AssetURL("stylesheet"); href != "" {
				ctx.Stylesheet = href
			}
		}
	}

	for _, formType := range view.FormTypes {
		ctx.FormTypes = append(ctx.FormTypes, optionContext{
			Value:    formType,
			Label:    formType,
			Selected: formType == view.FormType,
		})
	}

	for _, field := range view.Fields {
		fc, err := r.buildField(field, view.Value(field.Name), view.Error(field.Name))
		if err != nil {
			return pageContext{}, err
		}
		ctx.Fields = append(ctx.Fields, fc)
	}

	for _, table := range page.Tables {
		tc := tableContext{FormType: table.FormType, Columns: table.Columns}
		for _, row := range table.Rows {
			tc.Rows = append(tc.Rows, rowContext{
				Index:        row.Index,
				ID:           row.ID,
				Cells:        row.Cells,
				EditAction:   r.routes.edit(row.Index),
				DeleteAction: r.routes.remove(row.Index),
			})
		}
		ctx.Tables = append(ctx.Tables, tc)
	}
	return ctx, nil
}

func (r *Renderer) buildField(field schema.FieldSchema, value, message string) (fieldContext, error) {
	widget, ok := r.widgets.Resolve(field)
	if !ok {
		return fieldContext{}, fmt.Errorf("vanilla renderer: no widget for field %q (%s)", field.Name, field.Kind)
	}

	fc := fieldContext{
		Name:        field.Name,
		ID:          controlID(field.Name),
		Label:       field.DisplayLabel(),
		Widget:      widget.Name,
		InputType:   widget.InputType,
		Choice:      widget.Choice,
		Required:    field.Required,
		Value:       value,
		Error:       message,
		Placeholder: field.Placeholder,
		HelpHTML:    sanitizeHelp(field.Help),
	}
	if widget.Choice {
		if fc.Placeholder == "" {
			fc.Placeholder = widgets.Placeholder(field)
		}
		for _, opt := range field.Options {
			fc.Options = append(fc.Options, optionContext{Value: opt, Label: opt, Selected: opt == value})
		}
	}
	return fc, nil
}

func controlID(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return "df-" + name
}

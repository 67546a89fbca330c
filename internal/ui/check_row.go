package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/garage/internal/model"
)

// CheckRow renders one checked image: name, size, status and actions
type CheckRow struct {
	widget.BaseWidget

	check        *model.ImageCheck
	localization *Localization

	// UI components
	nameLabel  *widget.Label
	sizeLabel  *widget.Label
	statusText *canvas.Text
	revealBtn  *widget.Button
	openBtn    *widget.Button
	removeBtn  *widget.Button
	content    *fyne.Container

	// Callbacks
	onReveal func(filePath string)
	onOpen   func(filePath string)
	onRemove func(checkID string)
}

// NewCheckRow creates a row; call SetCheck to fill it
func NewCheckRow(localization *Localization) *CheckRow {
	r := &CheckRow{
		check:        &model.ImageCheck{},
		localization: localization,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

// SetCallbacks sets the action callbacks
func (r *CheckRow) SetCallbacks(onReveal, onOpen func(filePath string), onRemove func(checkID string)) {
	r.onReveal = onReveal
	r.onOpen = onOpen
	r.onRemove = onRemove
}

func (r *CheckRow) createUI() {
	r.nameLabel = widget.NewLabel("")
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis

	r.sizeLabel = widget.NewLabel("")
	r.sizeLabel.Alignment = fyne.TextAlignTrailing

	r.statusText = canvas.NewText("", theme.Color(theme.ColorNameForeground))

	r.revealBtn = widget.NewButton(IconFolder, func() {
		if r.onReveal != nil {
			r.onReveal(r.check.Path)
		}
	})
	r.revealBtn.Importance = widget.LowImportance

	r.openBtn = widget.NewButton(IconOpen, func() {
		if r.onOpen != nil {
			r.onOpen(r.check.Path)
		}
	})
	r.openBtn.Importance = widget.LowImportance

	r.removeBtn = widget.NewButton(IconClose, func() {
		if r.onRemove != nil {
			r.onRemove(r.check.ID)
		}
	})
	r.removeBtn.Importance = widget.LowImportance

	status := container.NewGridWrap(fyne.NewSize(StatusLabelWidth, r.statusText.MinSize().Height+theme.Padding()*4),
		container.NewCenter(r.statusText))
	size := container.NewGridWrap(fyne.NewSize(SizeLabelWidth, r.sizeLabel.MinSize().Height), r.sizeLabel)
	actions := container.NewHBox(size, status, r.revealBtn, r.openBtn, r.removeBtn)

	r.content = container.NewBorder(nil, nil, nil, actions, r.nameLabel)
}

// SetCheck updates the row with a check result
func (r *CheckRow) SetCheck(check *model.ImageCheck) {
	if check == nil {
		return
	}
	r.check = check

	r.nameLabel.SetText(check.DisplayName())
	r.sizeLabel.SetText(check.FileSizeString())

	icon := IconOK
	color := theme.Color(theme.ColorNameSuccess)
	if !check.Status.IsOK() {
		icon = IconError
		color = theme.Color(theme.ColorNameError)
	}
	r.statusText.Text = icon + " " + r.localization.StatusText(check.Status)
	r.statusText.Color = color
	r.statusText.Refresh()

	// Nothing to reveal when the file could not be read at all
	if check.Status == model.ImageStatusFileAccess {
		r.revealBtn.Disable()
		r.openBtn.Disable()
	} else {
		r.revealBtn.Enable()
		r.openBtn.Enable()
	}

	r.revealBtn.SetText(IconFolder)
	r.openBtn.SetText(IconOpen)
}

// MinSize keeps rows readable in narrow windows
func (r *CheckRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// CreateRenderer implements fyne.Widget
func (r *CheckRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

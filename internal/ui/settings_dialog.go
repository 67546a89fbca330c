package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/garage/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	maxSizeEntry     *widget.Entry
	backslashesCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.maxSizeEntry = widget.NewEntry()
	sd.maxSizeEntry.SetPlaceHolder(strconv.Itoa(config.MinMaxImageFileSize/BytesPerKiB) + "-" +
		strconv.Itoa(config.MaxMaxImageFileSize/BytesPerKiB))
	sd.maxSizeEntry.Validator = sd.validateSize

	sd.backslashesCheck = widget.NewCheck(sd.localization.GetText(KeyConvertBackslashes), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyMaxImageFileSize)),
		sd.maxSizeEntry,
		widget.NewSeparator(),
		sd.backslashesCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.maxSizeEntry.SetText(strconv.FormatInt(sd.settings.GetMaxImageFileSize()/BytesPerKiB, 10))
	sd.backslashesCheck.SetChecked(sd.settings.GetConvertBackslashes())
}

func (sd *SettingsDialog) validateSize(text string) error {
	if _, err := parseKiB(text); err != nil {
		return err
	}
	return nil
}

func parseKiB(text string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(text), 10, 64)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if kib, err := parseKiB(sd.maxSizeEntry.Text); err == nil {
		sd.settings.SetMaxImageFileSize(kib * BytesPerKiB)
	} else {
		dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeyInvalidSize), sd.window)
		return
	}

	sd.settings.SetConvertBackslashes(sd.backslashesCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

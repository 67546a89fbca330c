package ui

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/garage/internal/config"
	"github.com/ytget/garage/internal/imagecheck"
	"github.com/ytget/garage/internal/model"
	"github.com/ytget/garage/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	build        config.Build
	settings     *config.Settings
	localization *Localization
	checker      imagecheck.Checker

	checks []*model.ImageCheck

	// UI components
	addBtn       *widget.Button
	clearBtn     *widget.Button
	hintLabel    *widget.Label
	summaryLabel *widget.Label
	checkList    *widget.List
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, build config.Build, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		build:        build,
		settings:     settings,
		localization: localization,
	}
	ui.rebuildChecker()

	log.Printf("RootUI initialized: platform=%s edition=%s", build.Platform, build.EditionName())

	window.SetTitle(ui.windowTitle())
	ui.setupUI()
	return ui
}

// rebuildChecker recreates the checker from the current settings
func (ui *RootUI) rebuildChecker() {
	ui.checker = imagecheck.NewService(imagecheck.Options{
		MaxFileSize:        ui.settings.GetMaxImageFileSize(),
		Platform:           ui.build.Platform,
		ConvertBackslashes: ui.settings.GetConvertBackslashes(),
	})
}

// windowTitle returns the localized title, marking the business edition
func (ui *RootUI) windowTitle() string {
	title := ui.localization.GetText(KeyAppTitle)
	if ui.build.IsBz() {
		title += TitleSeparator + ui.localization.GetText(KeyBusinessEdition)
	}
	return title
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddImage), ui.onAddImage)
	ui.addBtn.Importance = widget.HighImportance

	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClear), ui.onClear)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.hintLabel = widget.NewLabel(ui.localization.GetText(KeyDropHint))
	ui.summaryLabel = widget.NewLabel("")

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, container.NewHBox(ui.clearBtn, ui.addBtn), ui.hintLabel)

	ui.checkList = widget.NewList(
		func() int {
			return len(ui.checks)
		},
		func() fyne.CanvasObject {
			row := NewCheckRow(ui.localization)
			row.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onRemoveCheck)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(ui.checks) {
				return
			}
			if row, ok := obj.(*CheckRow); ok {
				row.SetCheck(ui.checks[id])
			}
		},
	)

	content := container.NewBorder(topPanel, ui.summaryLabel, nil, nil, ui.checkList)
	ui.window.SetContent(content)

	ui.window.SetOnDropped(ui.onDropped)
	ui.updateSummary()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	addItem := fyne.NewMenuItem(ui.localization.GetText(KeyAddImage), ui.onAddImage)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), addItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.windowTitle())
	ui.addBtn.SetText(ui.localization.GetText(KeyAddImage))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClear))
	ui.hintLabel.SetText(ui.localization.GetText(KeyDropHint))
	ui.updateSummary()
	ui.checkList.Refresh()
}

// onAddImage shows a file dialog limited to supported image types
func (ui *RootUI) onAddImage() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		source := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			log.Printf("Warning: failed to close %s: %v", source, cerr)
		}

		check := ui.addSource(source)
		ui.settings.SetLastOpenDirectory(filepath.Dir(check.Path))
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(imagecheck.SupportedExtensions))
	if dir := ui.settings.GetLastOpenDirectory(); platform.CreateDirectoryIfNotExists(dir) == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fileDialog.SetLocation(lister)
		}
	}
	fileDialog.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fileDialog.Show()
}

// onDropped checks every file dropped on the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	for _, uri := range uris {
		if uri.Scheme() != FileScheme {
			log.Printf("Ignoring dropped non-file URI: %s", uri)
			continue
		}
		if !imagecheck.IsSupportedImage(uri.Path()) {
			log.Printf("Ignoring dropped unsupported file: %s", uri.Path())
			continue
		}
		// fyne renders Windows file URIs as file://C:/..., so hand over the
		// native path and let the checker decode and normalize it
		ui.addSource(uri.Path())
	}
}

// addSource runs the checker on a path or file URL and lists the result
func (ui *RootUI) addSource(source string) *model.ImageCheck {
	check := ui.checker.Check(source)
	log.Printf("Checked %s: %s", check.Path, check.Status)

	ui.checks = append(ui.checks, check)
	ui.checkList.Refresh()
	ui.checkList.ScrollToBottom()
	ui.updateSummary()
	return check
}

// updateSummary shows how many listed images are usable
func (ui *RootUI) updateSummary() {
	ok := 0
	for _, check := range ui.checks {
		if check.Status.IsOK() {
			ok++
		}
	}
	ui.summaryLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeySummary), ok, len(ui.checks)))
}

// onRemoveCheck removes one row
func (ui *RootUI) onRemoveCheck(checkID string) {
	for i, check := range ui.checks {
		if check.ID == checkID {
			ui.checks = append(ui.checks[:i], ui.checks[i+1:]...)
			break
		}
	}
	ui.checkList.Refresh()
	ui.updateSummary()
}

// onClear removes all rows
func (ui *RootUI) onClear() {
	ui.checks = nil
	ui.checkList.Refresh()
	ui.updateSummary()
}

// onRevealFile reveals the image in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Failed to reveal %s: %v", filePath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onOpenFile opens the image with the default viewer
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Failed to open %s: %v", filePath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.rebuildChecker).Show()
}

package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// PicturesDirName is the standard per-user image folder name
const PicturesDirName = "Pictures"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ExistsFile reports whether path names an existing entry that is not a
// directory. Existence follows symlinks, so a link to a missing target is
// absent. Errors other than "not exist" are logged and treated as absent.
func ExistsFile(path string) bool {
	if path == "" {
		return false
	}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: can not access the image file: %s: %v", path, err)
		}
		return false
	}

	info, err := os.Lstat(path)
	if err != nil {
		log.Printf("Warning: can not access the image file: %s: %v", path, err)
		return false
	}

	return !info.IsDir()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomePicturesDir returns the standard Pictures directory for the user
func GetHomePicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, PicturesDirName), nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := resolveExistingFile(filePath)
	if err != nil {
		return err
	}

	switch p := Detect(); p {
	case Darwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case Windows:
		return exec.Command(ExplorerCommand, WindowsSelectParam+absPath).Run()
	case Linux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", p)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := resolveExistingFile(filePath)
	if err != nil {
		return err
	}

	switch p := Detect(); p {
	case Darwin:
		return exec.Command(OpenCommand, absPath).Run()
	case Windows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case Linux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", p)
	}
}

func resolveExistingFile(filePath string) (string, error) {
	if !ExistsFile(filePath) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

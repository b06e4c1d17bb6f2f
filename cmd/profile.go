package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
)

const profileFile = "profile.json"

func profilePath() string {
	dir := os.Getenv("LAWADMIN_CONFIG_DIR")
	if dir == "" {
		dir = filepath.Join(xdg.Home, ".lawyerdirect")
	}
	return filepath.Join(dir, profileFile)
}

// Profile is one admin environment (production, staging, a local
// stack) with its own API endpoint.
type Profile struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
	Current  bool   `json:"current"`
}

// ProfileManager manages the profile file
type ProfileManager struct {
	profiles []Profile
	path     string
}

// NewProfileManager creates a new ProfileManager
func NewProfileManager() *ProfileManager {
	return &ProfileManager{
		profiles: []Profile{},
		path:     profilePath(),
	}
}

// Load loads profiles from file
func (pm *ProfileManager) Load() error {
	if _, err := os.Stat(pm.path); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(pm.path)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %v", err)
	}

	if len(data) == 0 {
		pm.profiles = []Profile{}
		return nil
	}

	if err := json.Unmarshal(data, &pm.profiles); err != nil {
		return fmt.Errorf("failed to parse profile file: %v", err)
	}

	return nil
}

// Save saves profiles to file
func (pm *ProfileManager) Save() error {
	if err := os.MkdirAll(filepath.Dir(pm.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	data, err := json.MarshalIndent(pm.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile data: %v", err)
	}

	if err := os.WriteFile(pm.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profile file: %v", err)
	}

	return nil
}

// Current returns the active profile, or nil when none is marked
func (pm *ProfileManager) Current() *Profile {
	for i := range pm.profiles {
		if pm.profiles[i].Current {
			return &pm.profiles[i]
		}
	}
	return nil
}

// Add adds a new profile and makes it current
func (pm *ProfileManager) Add(name, endpoint string) error {
	for _, profile := range pm.profiles {
		if profile.Name == name {
			return fmt.Errorf("profile %q already exists", name)
		}
	}

	for i := range pm.profiles {
		pm.profiles[i].Current = false
	}

	pm.profiles = append(pm.profiles, Profile{
		Name:     name,
		Endpoint: endpoint,
		Current:  true,
	})

	return pm.Save()
}

// Use marks the profile at the given 1-based index as current
func (pm *ProfileManager) Use(index int) error {
	if index < 1 || index > len(pm.profiles) {
		return fmt.Errorf("profile index out of range: %d", index)
	}
	for i := range pm.profiles {
		pm.profiles[i].Current = i == index-1
	}
	return pm.Save()
}

// Remove deletes the profile at the given 1-based index
func (pm *ProfileManager) Remove(index int) error {
	if index < 1 || index > len(pm.profiles) {
		return fmt.Errorf("profile index out of range: %d", index)
	}
	pm.profiles = append(pm.profiles[:index-1], pm.profiles[index:]...)
	return pm.Save()
}

// List prints all profiles
func (pm *ProfileManager) List() {
	if len(pm.profiles) == 0 {
		fmt.Println("No profiles found")
		return
	}

	fmt.Println("Profiles:")
	fmt.Println("--------")
	for i, profile := range pm.profiles {
		current := ""
		if profile.Current {
			current = " (*)"
		}
		fmt.Printf("%d. %s - %s%s\n", i+1, profile.Name, profile.Endpoint, current)
	}
}

// NewProfileCommand creates the profile command group
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage admin environment profiles",
		Long:  `Profiles hold the API endpoints of different admin environments (production, staging) and which one is active.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List profiles",
			RunE: func(cmd *cobra.Command, args []string) error {
				pm := NewProfileManager()
				if err := pm.Load(); err != nil {
					return err
				}
				pm.List()
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <name> <endpoint>",
			Short: "Add a profile and make it current",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				pm := NewProfileManager()
				if err := pm.Load(); err != nil {
					return err
				}
				if err := pm.Add(args[0], args[1]); err != nil {
					return err
				}
				fmt.Printf("Added profile %s (%s)\n", args[0], args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "use <number>",
			Short: "Switch the current profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid profile number: %s", args[0])
				}
				pm := NewProfileManager()
				if err := pm.Load(); err != nil {
					return err
				}
				return pm.Use(index)
			},
		},
		&cobra.Command{
			Use:   "remove <number>",
			Short: "Remove a profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid profile number: %s", args[0])
				}
				pm := NewProfileManager()
				if err := pm.Load(); err != nil {
					return err
				}
				return pm.Remove(index)
			},
		},
	)

	return cmd
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var (
	newGroup     string
	newArtifact  string
	newVersion   string
	newMainClass string
)

func init() {
	newCmd.Flags().StringVar(&newGroup, "group", "", "Group id (e.g. com.example)")
	newCmd.Flags().StringVar(&newArtifact, "artifact", "", "Artifact id (e.g. app)")
	newCmd.Flags().StringVar(&newVersion, "version", "0.1.0", "Initial version")
	newCmd.Flags().StringVar(&newMainClass, "main-class", "", "Entry-point class (optional)")
}

const configTemplate = `lib: {{.Group}}/{{.Artifact}}
version: {{.Version}}
{{- if .MainClass}}
main_class: {{.MainClass}}
{{- end}}
source_dirs:
  - src/main/java
resource_dirs:
  - src/main/resources
deps: {}
`

const mainTemplate = `package {{.Group}};

public class Main {
    public static void main(String[] args) {
        System.out.println("{{.Artifact}} {{.Version}}");
    }
}
`

var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Create a new project",
	Long:  "Create a new project with the standard source layout and a toolsbuild.yaml",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectName := args[0]

		if err := validateProjectName(projectName); err != nil {
			return err
		}
		if _, err := os.Stat(projectName); err == nil {
			return fmt.Errorf("directory %s already exists", projectName)
		}

		// Prompt for anything not provided by flags.
		if newGroup == "" {
			prompt := &survey.Input{Message: "Group id:", Default: "com.example"}
			if err := survey.AskOne(prompt, &newGroup, survey.WithValidator(survey.Required)); err != nil {
				return err
			}
		}
		if newArtifact == "" {
			prompt := &survey.Input{Message: "Artifact id:", Default: projectName}
			if err := survey.AskOne(prompt, &newArtifact, survey.WithValidator(survey.Required)); err != nil {
				return err
			}
		}

		data := map[string]string{
			"Group":     newGroup,
			"Artifact":  newArtifact,
			"Version":   newVersion,
			"MainClass": newMainClass,
		}

		pkgDir := filepath.Join(strings.Split(newGroup, ".")...)
		dirs := []string{
			filepath.Join(projectName, "src", "main", "java", pkgDir),
			filepath.Join(projectName, "src", "main", "resources"),
		}
		for _, dir := range dirs {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}

		if err := writeTemplateFile(filepath.Join(projectName, "toolsbuild.yaml"), configTemplate, data); err != nil {
			return err
		}
		mainPath := filepath.Join(projectName, "src", "main", "java", pkgDir, "Main.java")
		if err := writeTemplateFile(mainPath, mainTemplate, data); err != nil {
			return err
		}

		fmt.Printf("\n✓ Created project: %s\n\n", projectName)
		fmt.Println("Get started:")
		fmt.Printf("  cd %s\n", projectName)
		fmt.Println("  toolsbuild build")
		fmt.Println()
		return nil
	},
}

func validateProjectName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 || len(name) > 100 {
		return fmt.Errorf("project name must be 1-100 characters")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("project name cannot be an absolute path")
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("project name cannot contain '..'")
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("project name cannot contain path separators")
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("project name cannot start with '.'")
	}
	return nil
}

func writeTemplateFile(path, text string, data map[string]string) error {
	tmpl, err := template.New(filepath.Base(path)).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

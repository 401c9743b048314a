package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dongycare/checker-backend/internal/config"
	"github.com/dongycare/checker-backend/internal/entity"
	"github.com/dongycare/checker-backend/internal/form"
	"github.com/dongycare/checker-backend/internal/pkg/retry"
	"github.com/dongycare/checker-backend/internal/pkg/validator"
)

var (
	serverURL string
	symptoms  []string
	freeText  string
	imagePath string
)

func main() {
	root := &cobra.Command{
		Use:   "checker",
		Short: "Command-line client for the symptom analysis service",
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the analysis service")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Submit symptoms for analysis",
		Long: `Submit checked symptoms, free text and an optional tongue photo.

Checked symptoms are addressed as <group>:<number>, e.g.

  checker analyze -s than_am_hu:1 -s ty_khi_hu:3 --text "tóc rụng"

Run "checker groups" to see the catalog.`,
		RunE: runAnalyze,
	}
	analyzeCmd.Flags().StringArrayVarP(&symptoms, "symptom", "s", nil, "Checked symptom as <group>:<number> (repeatable)")
	analyzeCmd.Flags().StringVar(&freeText, "text", "", "Free-text symptoms")
	analyzeCmd.Flags().StringVar(&imagePath, "image", "", "Path to a tongue photo (max 5MB)")

	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "List the symptom checklist",
		Run:   runGroups,
	}

	root.AddCommand(analyzeCmd, groupsCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGroups(_ *cobra.Command, _ []string) {
	title := color.New(color.FgYellow, color.Bold)
	id := color.New(color.FgHiBlack)

	for _, group := range config.DefaultSymptomGroups() {
		title.Println(group.Title)
		id.Printf("  (%s)\n", group.ID)
		for i, symptom := range group.Symptoms {
			fmt.Printf("  %d. %s\n", i+1, symptom)
		}
		fmt.Println()
	}
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	catalog := config.DefaultSymptomGroups()

	v := validator.NewValidator(config.UploadConfig{MaxImageSize: 5 * 1024 * 1024})
	sender := form.NewHTTPSender(serverURL, retry.DefaultConfig())
	controller := form.NewController(catalog, v, sender)

	for _, ref := range symptoms {
		groupID, symptom, err := resolveSymptom(catalog, ref)
		if err != nil {
			return err
		}
		controller.Toggle(groupID, symptom)
	}

	controller.SetFreeText(freeText)

	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		if err := controller.AttachImage(data); err != nil {
			return err
		}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Đang phân tích..."
	s.Start()

	result, err := controller.Submit(context.Background())
	s.Stop()
	if err != nil {
		return err
	}

	printResult(result)
	return nil
}

// resolveSymptom maps "<group>:<number>" to a catalog entry.
func resolveSymptom(catalog []entity.SymptomGroup, ref string) (string, string, error) {
	groupID, indexStr, ok := strings.Cut(ref, ":")
	if !ok {
		return "", "", fmt.Errorf("invalid symptom reference %q, want <group>:<number>", ref)
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return "", "", fmt.Errorf("invalid symptom number in %q", ref)
	}

	for _, group := range catalog {
		if group.ID != groupID {
			continue
		}
		if index < 1 || index > len(group.Symptoms) {
			return "", "", fmt.Errorf("group %s has %d symptoms, got %d", groupID, len(group.Symptoms), index)
		}
		return group.ID, group.Symptoms[index-1], nil
	}

	return "", "", fmt.Errorf("unknown symptom group %q", groupID)
}

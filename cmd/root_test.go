package cmd

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
)

// newRootForTest は共通フラグを備えたルートコマンドを組み立てます。
func newRootForTest(t *testing.T) (*cobra.Command, *cobra.Command) {
	t.Helper()
	t.Cleanup(func() { cfg = nil })

	root := &cobra.Command{Use: "fashion-kit", PersistentPreRunE: preRunAppE}
	root.PersistentFlags().BoolP("verbose", "V", false, "")
	addAppFlags(root)

	child := &cobra.Command{Use: "child", RunE: func(*cobra.Command, []string) error { return nil }}
	root.AddCommand(child)
	return root, child
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestPreRunAppE(t *testing.T) {
	t.Run("認証情報が無い場合はエラー", func(t *testing.T) {
		unsetenv(t, "GEMINI_API_KEY", "API_KEY", "PROJECT_ID")
		root, _ := newRootForTest(t)
		root.SetArgs([]string{"child"})
		if err := root.Execute(); err == nil {
			t.Error("認証情報が無いのにエラーになりませんでした")
		}
		if cfg != nil {
			t.Error("失敗時に設定が保持されました")
		}
	})

	t.Run("共通フラグを設定に反映すること", func(t *testing.T) {
		unsetenv(t, "PROJECT_ID", "GEMINI_MODEL")
		t.Setenv("GEMINI_API_KEY", "test-key")
		root, _ := newRootForTest(t)
		root.SetArgs([]string{"child", "--verbose", "--model", "flag-model", "-i", "in.json"})
		if err := root.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if cfg == nil {
			t.Fatal("設定が読み込まれていません")
		}
		if !cfg.Options.Verbose || cfg.Options.InputFile != "in.json" {
			t.Errorf("Options = %+v", cfg.Options)
		}
		if got := cfg.Library().TextModel; got != "flag-model" {
			t.Errorf("TextModel = %q, want flag-model", got)
		}
	})
}

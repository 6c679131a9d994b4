// Command jitterbug runs the Jitterbug tasks. It lists the available
// tasks, runs policies in a MuJoCo simulation of the Jitterbug, and
// plots the saved episodic returns.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/jitterbug/agent"
	"github.com/samuelfneumann/jitterbug/environment/envconfig"
	"github.com/samuelfneumann/jitterbug/environment/mujoco/jitterbug"
	"github.com/samuelfneumann/jitterbug/experiment"
	"github.com/samuelfneumann/jitterbug/experiment/checkpointer"
	"github.com/samuelfneumann/jitterbug/experiment/tracker"
	"github.com/samuelfneumann/jitterbug/utils/progressbar"
)

var (
	dataDir string

	// rollout
	configFile  string
	task        string
	seed        uint64
	modelPath   string
	timeLimit   float64
	episodes    int
	policyType  string
	action      float64
	render      bool
	frameEvery  int
	showBar     bool
	plotHeight  int
	filterByTag string
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("jitterbug: ")

	for _, envFile := range []string{".env", "../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jitterbug",
		Short:         "Jitterbug locomotion tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".jitterbug",
		"data directory")

	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "list tasks",
		Args:  cobra.NoArgs,
		RunE:  listTasks,
	}
	tasksCmd.Flags().StringVar(&filterByTag, "tag", "",
		"only list tasks with this tag")

	rolloutCmd := &cobra.Command{
		Use:   "rollout",
		Short: "run a policy on a task",
		Args:  cobra.NoArgs,
		RunE:  rollout,
	}
	rolloutCmd.Flags().StringVar(&configFile, "config", "",
		"config file path (yaml)")
	rolloutCmd.Flags().StringVar(&task, "task", "", "task name")
	rolloutCmd.Flags().Uint64Var(&seed, "seed", 0, "task random seed")
	rolloutCmd.Flags().StringVar(&modelPath, "model", "",
		"MJCF model path, defaults to $"+envconfig.ModelEnv)
	rolloutCmd.Flags().Float64Var(&timeLimit, "time", 0,
		"episode length in seconds")
	rolloutCmd.Flags().IntVar(&episodes, "episodes", 1, "number of episodes")
	rolloutCmd.Flags().StringVar(&policyType, "policy",
		string(agent.ConstantPolicy), "policy: constant or uniform")
	rolloutCmd.Flags().Float64Var(&action, "action", agent.DemoAction,
		"action of the constant policy")
	rolloutCmd.Flags().BoolVar(&render, "render", false,
		"render the final frame")
	rolloutCmd.Flags().IntVar(&frameEvery, "frames", 0,
		"render a frame every n steps of each episode")
	rolloutCmd.Flags().BoolVar(&showBar, "progress", false,
		"show a progress bar")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return envconfig.Default().Save(args[0])
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "plot saved episodic data",
		Args:  cobra.ExactArgs(1),
		RunE:  plot,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	rootCmd.AddCommand(tasksCmd, rolloutCmd, initCmd, plotCmd)
	return rootCmd
}

func listTasks(cmd *cobra.Command, args []string) error {
	r := jitterbug.NewRegistry()

	names := r.Names()
	if filterByTag != "" {
		names = r.Tagged(filterByTag)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTAGS\tDESCRIPTION")
	for _, name := range names {
		tags, err := r.Tags(name)
		if err != nil {
			return err
		}
		desc, err := r.Description(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v\t%v\t%v\n", name, strings.Join(tags, ","), desc)
	}
	return w.Flush()
}

// rolloutConfig returns the environment config from the config file,
// overridden by any flags that were set
func rolloutConfig(cmd *cobra.Command) (envconfig.Config, error) {
	c := envconfig.Default()
	if configFile != "" {
		var err error
		if c, err = envconfig.Load(configFile); err != nil {
			return envconfig.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("task") {
		c.Task = task
	}
	if flags.Changed("seed") {
		c.Seed = seed
	}
	if flags.Changed("model") {
		c.ModelPath = modelPath
	}
	if flags.Changed("time") {
		c.TimeLimit = timeLimit
	}
	return c, c.Validate()
}

func rollout(cmd *cobra.Command, args []string) error {
	c, err := rolloutConfig(cmd)
	if err != nil {
		return err
	}
	if episodes < 1 {
		return fmt.Errorf("rollout: episodes should be positive, have(%v)",
			episodes)
	}

	env, _, err := c.CreateMujoco()
	if err != nil {
		return err
	}
	defer env.Close()

	policyConf := agent.Config{
		Type:   agent.PolicyType(policyType),
		Action: []float64{action},
		Seed:   c.Seed,
	}
	policy, err := policyConf.CreatePolicy(env.ActionSpec())
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	runDir := filepath.Join(dataDir, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("rollout: %v", err)
	}
	if err := c.Save(filepath.Join(runDir, "config.yaml")); err != nil {
		return err
	}
	log.Printf("run %v: %v, %v policy", runID, env.Task(), policyType)

	returnsFile := filepath.Join(runDir, "returns.bin")
	returns := tracker.NewReturn(returnsFile)
	trackers := []tracker.Tracker{
		returns,
		tracker.NewEpisodeLength(filepath.Join(runDir, "lengths.bin")),
	}

	var checkpointers []checkpointer.Checkpointer
	if frameEvery > 0 {
		framesDir := filepath.Join(runDir, "frames")
		if err := os.MkdirAll(framesDir, 0o755); err != nil {
			return fmt.Errorf("rollout: %v", err)
		}
		checkpointers = append(checkpointers, checkpointer.NewNStep(
			frameEvery, env, checkpointer.FilenameEnumerator(0,
				filepath.Join(framesDir, "frame"), ".png"),
		))
	}

	steps := episodes * env.EpisodeSteps()
	e := experiment.NewOnline(env, policy, uint(steps), trackers,
		checkpointers)
	if showBar {
		e.ShowProgress(progressbar.NewManualProgressBar(50, steps))
	}

	if err := e.Run(); err != nil {
		return err
	}
	if err := e.Save(); err != nil {
		return err
	}

	if render {
		frame := filepath.Join(runDir, "final.png")
		if err := env.Render(frame); err != nil {
			return err
		}
		log.Printf("saved final frame to %v", frame)
	}

	summary, err := tracker.Summarize(returns.Returns())
	if err != nil {
		return err
	}
	log.Printf("returns: %v", summary)
	log.Printf("saved returns to %v", returnsFile)
	return nil
}

func plot(cmd *cobra.Command, args []string) error {
	data, err := tracker.LoadData(args[0])
	if err != nil {
		return err
	}
	summary, err := tracker.Summarize(data)
	if err != nil {
		return fmt.Errorf("plot: %v: %v", args[0], err)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(80),
		asciigraph.Caption(filepath.Base(args[0])),
	)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)
	fmt.Fprintln(out, summary)
	return nil
}

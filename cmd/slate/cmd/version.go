package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the slate CLI version and build time.",
		Usage: "slate version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}

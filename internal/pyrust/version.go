package pyrust

// Version is the interpreter release string shown by the CLI.
const Version = "1.0.0"

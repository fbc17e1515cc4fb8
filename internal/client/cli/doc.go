// Package cli provides the interactive gophaccounts command-line client.
//
// It wires configuration, the local SQLite database, the in-process
// simulated accounts API, the identity provider and the session manager,
// then runs a REPL. The prompt shows the current route, which stands in for
// page navigation: login lands on "/" (or the route that required login),
// logout lands on "/login".
//
// Commands:
//   - help, login, logout, whoami
//   - list | l          list accounts
//   - show <id>         show one account
//   - edit <id>         change name (required) and extra info
//   - delete <id>       delete an account; deleting yourself logs out
//   - exit | quit
package cli

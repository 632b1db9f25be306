package cmd

import (
	"fmt"
	"os"
)

// Completion outputs shell completion scripts
func Completion(shell string) {
	switch shell {
	case "bash":
		fmt.Print(bashCompletion)
	case "zsh":
		fmt.Print(zshCompletion)
	case "fish":
		fmt.Print(fishCompletion)
	default:
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\nSupported: bash, zsh, fish\n", shell)
		os.Exit(1)
	}
}

const bashCompletion = `_ignoresync() {
    local cur prev words cword
    _init_completion || return

    local commands="sync status diff history undo completion help"

    if [[ $cword -eq 1 ]]; then
        COMPREPLY=($(compgen -W "$commands" -- "$cur"))
        return
    fi

    local cmd="${words[1]}"
    case "$cmd" in
        sync)
            COMPREPLY=($(compgen -W "--force --dry-run -n" -- "$cur"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "$cur"))
            ;;
        help)
            COMPREPLY=($(compgen -W "$commands" -- "$cur"))
            ;;
    esac
}
complete -F _ignoresync ignoresync
`

const zshCompletion = `#compdef ignoresync

_ignoresync() {
    local -a commands
    commands=(
        'sync:Append untracked paths to the ignore file and purge the index'
        'status:Show untracked paths and journal summary'
        'diff:Preview the pending ignore file change'
        'history:List recorded sync runs'
        'undo:Back out the most recent sync'
        'completion:Generate shell completions'
        'help:Show help for a command'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    case "$words[2]" in
        sync)
            _arguments '--force[Sync without confirmation]' \
                       '--dry-run[Show the change without applying it]' \
                       '-n[Show the change without applying it]'
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
        help)
            _describe 'command' commands
            ;;
    esac
}

_ignoresync "$@"
`

const fishCompletion = `complete -c ignoresync -f

complete -c ignoresync -n '__fish_use_subcommand' -a sync -d 'Append untracked paths to the ignore file and purge the index'
complete -c ignoresync -n '__fish_use_subcommand' -a status -d 'Show untracked paths and journal summary'
complete -c ignoresync -n '__fish_use_subcommand' -a diff -d 'Preview the pending ignore file change'
complete -c ignoresync -n '__fish_use_subcommand' -a history -d 'List recorded sync runs'
complete -c ignoresync -n '__fish_use_subcommand' -a undo -d 'Back out the most recent sync'
complete -c ignoresync -n '__fish_use_subcommand' -a completion -d 'Generate shell completions'
complete -c ignoresync -n '__fish_use_subcommand' -a help -d 'Show help for a command'

complete -c ignoresync -n '__fish_seen_subcommand_from sync' -l force -d 'Sync without confirmation'
complete -c ignoresync -n '__fish_seen_subcommand_from sync' -l dry-run -s n -d 'Show the change without applying it'
complete -c ignoresync -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'
`

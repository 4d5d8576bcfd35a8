package cli

import (
	"context"
	"strings"
)

const helpText = `Commands:
  forest list [page] | load <id> | new | show | set <field> <value>
         attach <images|map> <path...> | detach <images|map> <n>
         sort <images|map> <n> <sort> | save | delete
  exp    list | codes | add | set <n> <field> <value> | attach <n> <path...>
         detach <n> <m> | save <n> | remove <n>
  video  list | add | set <n> <season> | attach <n> <path> | detach <n>
         row add <n> | row set <n> <m> <expSeqNo> <time> | row remove <n> <m>
         save <n> | remove <n>
  notice list [page] | load <id> | new | show | set <field> <value> | save | delete
  draft  save <name> | load <name> | list | delete <name>
  help | exit | quit`

// runREPL reads a line, dispatches on the first token and then settles the
// dialog if the command opened it. It returns on end of input or exit.
func (a *App) runREPL(ctx context.Context) {
	for {
		a.printf("forestadmin %s> ", a.status())
		if !a.in.Scan() {
			return
		}
		parts := strings.Fields(a.in.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.println(helpText)
		case "forest":
			a.forest(ctx, args)
		case "exp":
			a.experience(ctx, args)
		case "video":
			a.video(ctx, args)
		case "notice":
			a.notice(ctx, args)
		case "draft":
			a.draft(ctx, args)
		case "exit", "quit":
			a.println("Bye!")
			return
		default:
			a.println("Unknown command:", cmd)
		}

		if !a.settleDialog(ctx) {
			return
		}
	}
}

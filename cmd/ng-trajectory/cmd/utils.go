package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// confirm shows msg and asks the user to type y or n (ENTER defaults to
// no); grounded on cmd/recast/cmd/utils.go's askForConfirmation.
func confirm(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	const defaultAnswer = 'N'

	for {
		line, err := reader.ReadString('\n')
		if len(line) == 0 {
			if err != nil {
				return defaultAnswer == 'Y'
			}
			continue
		}
		switch line[0] {
		case '\n':
			return defaultAnswer == 'Y'
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// stdin is shared so consecutive prompts do not lose buffered input.
var stdin = bufio.NewReader(os.Stdin)

func confirmAction(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	response, _ := stdin.ReadString('\n') // Error ignored: EOF/error treated as "no"
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// choice is the answer to a sampled idea.
type choice int

const (
	choiceCancel choice = iota
	choiceAccept
	choiceReject
)

func promptChoice() choice {
	fmt.Print("[a]ccept / [r]eject / [c]ancel: ")
	response, _ := stdin.ReadString('\n') // EOF cancels
	return parseChoice(response)
}

func parseChoice(response string) choice {
	switch strings.TrimSpace(strings.ToLower(response)) {
	case "a", "accept", "y", "yes":
		return choiceAccept
	case "r", "reject", "n", "no":
		return choiceReject
	default:
		return choiceCancel
	}
}

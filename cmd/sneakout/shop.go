package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sneakout/internal/content"
	"github.com/vovakirdan/sneakout/internal/engine"
	"github.com/vovakirdan/sneakout/internal/storage"
)

var shopCmd = &cobra.Command{
	Use:   "shop [item]",
	Short: "Browse the gadget shop or buy an item",
	Long: `With no arguments, lists the gadgets on sale and your balance.
With an item id, buys one of that gadget.

Examples:
  sneakout shop
  sneakout shop spray
  sneakout shop die`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShop,
}

func runShop(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		showShop(store)
		return
	}

	buyItem(store, engine.ConsumableKind(args[0]))
}

func showShop(store *storage.Store) {
	balance, err := store.Money()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading balance: %v\n", err)
		os.Exit(1)
	}
	stock, err := store.Consumables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stock: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Balance: %d\n", balance)
	fmt.Println()
	fmt.Printf("  %-8s  %-15s  %-6s  %-5s  %s\n", "ID", "Name", "Price", "Owned", "Effect")
	fmt.Printf("  %-8s  %-15s  %-6s  %-5s  %s\n", "--", "----", "-----", "-----", "------")
	for _, item := range content.Consumables {
		fmt.Printf("  %-8s  %-15s  %-6d  %-5d  %s\n",
			string(item.Kind), item.Name, item.Price, stock[item.Kind], item.Desc)
	}
	fmt.Println()
	fmt.Println("Run 'sneakout shop <id>' to buy one.")
}

func buyItem(store *storage.Store, kind engine.ConsumableKind) {
	var found *content.ConsumableInfo
	for i := range content.Consumables {
		if content.Consumables[i].Kind == kind {
			found = &content.Consumables[i]
			break
		}
	}
	if found == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown item %q\n", string(kind))
		fmt.Fprintln(os.Stderr, "Run 'sneakout shop' to see what's on sale.")
		os.Exit(1)
	}

	if err := store.SpendMoney(found.Price); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := store.AddConsumable(kind); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording purchase: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bought %s for %d.\n", found.Name, found.Price)
}

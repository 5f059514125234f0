package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quinrank/pokercore"
)

var rankVariant string

var rankCmd = &cobra.Command{
	Use:   "rank <cards...>",
	Short: "Rank a hand under one variant",
	Long: `Rank a hand under one variant. Cards are space-separated two-character
tokens such as "Ah" or "Tc".

For omaha and omaha-hi-lo, pass hole cards then "|" then the board, e.g.:

  pokerbench rank --variant omaha Ah Ad Ks Kc \| 2c 3d 4h 5s 7c`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankVariant, "variant", "V", "poker",
		"poker, ace-to-five, deuce-to-seven, six-plus, badugi, baduci, omaha, omaha-hi-lo")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	if rankVariant == "omaha" || rankVariant == "omaha-hi-lo" {
		return runOmahaRank(args)
	}

	hand, err := parseHand(joinArgs(args))
	if err != nil {
		return err
	}

	// Every variant below packs its category and tiebreak digits
	// differently (see each <Variant>Describe's doc comment), so none of
	// them can share a single "%s"-via-Describe print line: poker is the
	// only one whose HandRank decodes correctly under the standard
	// category layout HandRank.Describe assumes.
	var r pokercore.HandRank
	var desc string
	switch rankVariant {
	case "poker":
		r = pokercore.PokerRank(hand)
		desc = r.Describe()
	case "ace-to-five":
		r = pokercore.AceToFiveRank(hand)
		desc = pokercore.AceToFiveDescribe(r)
	case "deuce-to-seven":
		r = pokercore.DeuceToSevenRank(hand)
		desc = pokercore.DeuceToSevenDescribe(r)
	case "six-plus":
		r = pokercore.SixPlusRank(hand)
		cat := pokercore.SixPlusCategory(r)
		logrus.WithField("category", cat).Debug("six-plus category")
		desc = fmt.Sprintf("%s: %s", cat, pokercore.SixPlusDescribe(r))
	case "badugi":
		r = pokercore.BadugiRank(hand)
		desc = pokercore.DescribeBadugi(r, false)
	case "baduci":
		r = pokercore.BaduciRank(hand)
		desc = pokercore.DescribeBadugi(r, true)
	default:
		return fmt.Errorf("unknown variant %q", rankVariant)
	}

	fmt.Printf("%s: %d (%s)\n", hand, uint32(r), desc)
	return nil
}

func runOmahaRank(args []string) error {
	holeStr, boardStr, err := splitHoleBoard(args)
	if err != nil {
		return err
	}
	hole, err := parseHand(holeStr)
	if err != nil {
		return fmt.Errorf("hole: %w", err)
	}
	board, err := parseHand(boardStr)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	if rankVariant == "omaha" {
		hi := pokercore.OmahaRank(hole, board)
		fmt.Printf("hole %s board %s: hi %d (%s)\n", hole, board, uint32(hi), hi)
		return nil
	}
	hi, lo := pokercore.OmahaHiLoRank(hole, board)
	fmt.Printf("hole %s board %s: hi %d (%s)\n", hole, board, uint32(hi), hi)
	if lo.Qualifies {
		// lo.Rank is an ace-to-five rank, not a standard one; %s on it
		// directly would hit the same mis-decode HandRank.Describe's
		// doc comment warns about.
		fmt.Printf("  lo %d (%s)\n", uint32(lo.Rank), pokercore.AceToFiveDescribe(lo.Rank))
	} else {
		fmt.Println("  lo: none")
	}
	return nil
}

func joinArgs(args []string) string {
	s := ""
	for i, a := range args {
		if i > 0 {
			s += " "
		}
		s += a
	}
	return s
}

// splitHoleBoard splits args on a lone "|" token into hole and board card
// strings.
func splitHoleBoard(args []string) (hole, board string, err error) {
	for i, a := range args {
		if a == "|" {
			return joinArgs(args[:i]), joinArgs(args[i+1:]), nil
		}
	}
	return "", "", fmt.Errorf("expected hole and board separated by \"|\"")
}

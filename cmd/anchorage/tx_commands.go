package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/brojonat/anchorage/ledger"
	"github.com/bytedance/sonic"
	"github.com/urfave/cli/v2"
)

func txCommands() *cli.Command {
	return &cli.Command{
		Name:  "tx",
		Usage: "Runtime transaction inspection commands",
		Subcommands: []*cli.Command{
			txDecodeCommand(),
			txIDCommand(),
		},
	}
}

func txDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode a serialized runtime transaction and print it as JSON",
		ArgsUsage: "TX_BYTES",
		Flags: []cli.Flag{
			encodingFlag(),
		},
		Action: func(c *cli.Context) error {
			raw, err := decodeInput(c)
			if err != nil {
				return err
			}
			tx, err := ledger.RuntimeTransactionFromSlice(raw)
			if err != nil {
				return fmt.Errorf("failed to decode transaction: %w", err)
			}
			view, err := newTxView(tx)
			if err != nil {
				return err
			}
			return printJSON(view)
		},
	}
}

func txIDCommand() *cli.Command {
	return &cli.Command{
		Name:      "id",
		Usage:     "Compute the canonical identifier of a serialized runtime transaction",
		ArgsUsage: "TX_BYTES",
		Flags: []cli.Flag{
			encodingFlag(),
		},
		Action: func(c *cli.Context) error {
			raw, err := decodeInput(c)
			if err != nil {
				return err
			}
			tx, err := ledger.RuntimeTransactionFromSlice(raw)
			if err != nil {
				return fmt.Errorf("failed to decode transaction: %w", err)
			}
			txid, err := tx.TxID()
			if err != nil {
				return err
			}
			fmt.Println(txid)
			return nil
		},
	}
}

func processedCommands() *cli.Command {
	return &cli.Command{
		Name:  "processed",
		Usage: "Processed transaction inspection commands",
		Subcommands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "Decode a serialized processed transaction and print it as JSON",
				ArgsUsage: "RECORD_BYTES",
				Flags: []cli.Flag{
					encodingFlag(),
				},
				Action: func(c *cli.Context) error {
					raw, err := decodeInput(c)
					if err != nil {
						return err
					}
					pt, err := ledger.ProcessedTransactionFromSlice(raw)
					if err != nil {
						return fmt.Errorf("failed to decode processed transaction: %w", err)
					}
					view, err := newProcessedView(pt)
					if err != nil {
						return err
					}
					return printJSON(view)
				},
			},
		},
	}
}

func encodingFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Value:   "hex",
		Usage:   "Input encoding: hex or base64",
	}
}

// decodeInput reads the first positional argument using the selected
// encoding.
func decodeInput(c *cli.Context) ([]byte, error) {
	arg := strings.TrimSpace(c.Args().First())
	if arg == "" {
		return nil, fmt.Errorf("missing input bytes argument")
	}
	switch c.String("encoding") {
	case "hex":
		raw, err := hex.DecodeString(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode hex input: %w", err)
		}
		return raw, nil
	case "base64":
		raw, err := base64.StdEncoding.DecodeString(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 input: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q (want hex or base64)", c.String("encoding"))
	}
}

func printJSON(v any) error {
	out, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// JSON views of the wire types, rendered with base58 keys and hex payloads.

type accountMetaView struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type instructionView struct {
	ProgramID string            `json:"program_id"`
	Accounts  []accountMetaView `json:"accounts"`
	Data      string            `json:"data"`
	Hash      string            `json:"hash"`
}

type messageView struct {
	Signers      []string          `json:"signers"`
	Instructions []instructionView `json:"instructions"`
	Hash         string            `json:"hash"`
}

type txView struct {
	Version    uint32      `json:"version"`
	Signatures []string    `json:"signatures"`
	Message    messageView `json:"message"`
	TxID       string      `json:"txid"`
}

type processedView struct {
	Transaction txView   `json:"transaction"`
	Status      string   `json:"status"`
	Error       string   `json:"error,omitempty"`
	BitcoinTxid string   `json:"bitcoin_txid,omitempty"`
	AccountTags []string `json:"account_tags,omitempty"`
}

func newInstructionView(ix ledger.Instruction) instructionView {
	view := instructionView{
		ProgramID: ix.ProgramID.String(),
		Accounts:  make([]accountMetaView, 0, len(ix.Accounts)),
		Data:      hex.EncodeToString(ix.Data),
		Hash:      ix.Hash(),
	}
	for _, meta := range ix.Accounts {
		view.Accounts = append(view.Accounts, accountMetaView{
			Pubkey:     meta.Pubkey.String(),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}
	return view
}

func newTxView(tx ledger.RuntimeTransaction) (txView, error) {
	txid, err := tx.TxID()
	if err != nil {
		return txView{}, err
	}
	view := txView{
		Version:    tx.Version,
		Signatures: make([]string, 0, len(tx.Signatures)),
		Message: messageView{
			Signers:      make([]string, 0, len(tx.Message.Signers)),
			Instructions: make([]instructionView, 0, len(tx.Message.Instructions)),
			Hash:         tx.Message.Hash(),
		},
		TxID: txid,
	}
	for _, sig := range tx.Signatures {
		view.Signatures = append(view.Signatures, sig.String())
	}
	for _, signer := range tx.Message.Signers {
		view.Message.Signers = append(view.Message.Signers, signer.String())
	}
	for _, ix := range tx.Message.Instructions {
		view.Message.Instructions = append(view.Message.Instructions, newInstructionView(ix))
	}
	return view, nil
}

func newProcessedView(pt ledger.ProcessedTransaction) (processedView, error) {
	txv, err := newTxView(pt.Transaction)
	if err != nil {
		return processedView{}, err
	}
	view := processedView{
		Transaction: txv,
		Status:      pt.Status.Kind.String(),
		Error:       pt.Status.Err,
	}
	if pt.BitcoinTxid != nil {
		view.BitcoinTxid = hex.EncodeToString(pt.BitcoinTxid[:])
	}
	for _, tag := range pt.AccountTags {
		view.AccountTags = append(view.AccountTags, hex.EncodeToString(tag[:]))
	}
	return view, nil
}

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/brojonat/anchorage/bip322"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/urfave/cli/v2"
)

func messageCommands() *cli.Command {
	return &cli.Command{
		Name:  "message",
		Usage: "BIP-322 message signing commands",
		Subcommands: []*cli.Command{
			messageHashCommand(),
			messageSignCommand(),
			messageVerifyCommand(),
		},
	}
}

func networkFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "network",
		Aliases: []string{"n"},
		Value:   "regtest",
		Usage:   "Bitcoin network: mainnet, testnet, signet, or regtest",
		EnvVars: []string{"ANCHORAGE_NETWORK"},
	}
}

func messageHashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Print the BIP-322 tagged hash of a message",
		ArgsUsage: "MESSAGE",
		Action: func(c *cli.Context) error {
			fmt.Println(hex.EncodeToString(bip322.MessageHash([]byte(c.Args().First()))))
			return nil
		},
	}
}

func messageSignCommand() *cli.Command {
	return &cli.Command{
		Name:      "sign",
		Usage:     "Sign a message with a Taproot key",
		ArgsUsage: "MESSAGE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Usage:    "Hex-encoded 32-byte private key",
				EnvVars:  []string{"ANCHORAGE_PRIVATE_KEY"},
				Required: true,
			},
			networkFlag(),
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.LogLevel)

			params, err := networkParams(c.String("network"))
			if err != nil {
				return err
			}
			keyBytes, err := hex.DecodeString(c.String("key"))
			if err != nil {
				return fmt.Errorf("failed to decode private key hex: %w", err)
			}
			if len(keyBytes) != 32 {
				return fmt.Errorf("invalid private key length: got %d, want 32", len(keyBytes))
			}
			privKey, _ := btcec.PrivKeyFromBytes(keyBytes)

			message := []byte(c.Args().First())
			sig, err := bip322.Sign(privKey, message, params)
			if err != nil {
				return fmt.Errorf("failed to sign message: %w", err)
			}
			addr, err := bip322.TaprootAddress(privKey.PubKey(), params)
			if err != nil {
				return err
			}
			logger.Debug("message signed", "network", c.String("network"), "address", addr.String())

			return printJSON(map[string]string{
				"signature": hex.EncodeToString(sig[:]),
				"pubkey":    hex.EncodeToString(schnorr.SerializePubKey(privKey.PubKey())),
				"address":   addr.String(),
			})
		},
	}
}

func messageVerifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Verify a BIP-322 signature against an x-only public key",
		ArgsUsage: "MESSAGE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pubkey",
				Aliases:  []string{"p"},
				Usage:    "Hex-encoded 32-byte x-only public key",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "signature",
				Aliases:  []string{"s"},
				Usage:    "Hex-encoded 64-byte signature",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "sighash-all",
				Usage: "Append an explicit SIGHASH_ALL byte to the witness signature",
			},
			networkFlag(),
		},
		Action: func(c *cli.Context) error {
			params, err := networkParams(c.String("network"))
			if err != nil {
				return err
			}
			pubkey, err := hex.DecodeString(c.String("pubkey"))
			if err != nil {
				return fmt.Errorf("failed to decode pubkey hex: %w", err)
			}
			sigBytes, err := hex.DecodeString(c.String("signature"))
			if err != nil {
				return fmt.Errorf("failed to decode signature hex: %w", err)
			}
			if len(sigBytes) != bip322.SignatureSize {
				return fmt.Errorf("invalid signature length: got %d, want %d", len(sigBytes), bip322.SignatureSize)
			}
			var sig [bip322.SignatureSize]byte
			copy(sig[:], sigBytes)

			message := []byte(c.Args().First())
			if err := bip322.Verify(message, pubkey, sig, c.Bool("sighash-all"), params); err != nil {
				return cli.Exit(fmt.Sprintf("signature invalid: %v", err), 1)
			}
			fmt.Println("signature valid")
			return nil
		},
	}
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hmaeno/gnes/pkg/cartridge"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: rominfo <rom_file>")
		os.Exit(1)
	}

	romFile := os.Args[1]

	file, err := os.Open(romFile)
	if err != nil {
		log.Fatalf("Failed to open ROM file: %v", err)
	}
	defer file.Close()

	cart, err := cartridge.LoadFromReader(file)
	if err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}

	h := cart.Header

	fmt.Printf("File: %s\n\n", romFile)
	fmt.Printf("Magic: %q\n", string(h.Magic[:]))
	fmt.Printf("PRG ROM: %d x 16KB (%d KB)\n", h.PRGROMSize, int(h.PRGROMSize)*16)
	if h.CHRROMSize > 0 {
		fmt.Printf("CHR ROM: %d x 8KB (%d KB)\n", h.CHRROMSize, int(h.CHRROMSize)*8)
	} else {
		fmt.Printf("CHR ROM: none (8 KB CHR RAM)\n")
	}
	fmt.Printf("Mapper: %d\n", h.MapperNumber())
	fmt.Printf("Mirroring: %s\n", cart.Mirroring)
	fmt.Printf("Trainer: %v\n", h.Flags6&0x04 != 0)
	fmt.Printf("Battery: %v\n", h.Flags6&0x02 != 0)
}

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dongycare/checker-backend/internal/entity"
	"github.com/dongycare/checker-backend/internal/pkg/markup"
)

var (
	headerColor = color.New(color.FgYellow, color.Bold)
	bulletColor = color.New(color.FgRed)
	strongColor = color.New(color.Bold)
	arrowColor  = color.New(color.FgYellow)
)

func printResult(result *entity.AnalysisResult) {
	fmt.Println()
	headerColor.Println("KẾT QUẢ ĐÔNG Y BIỆN CHỨNG")
	fmt.Println()

	printSection("Triệu chứng", strings.Join(result.TrieuChung, "\n"))
	printSection("Kết luận", result.KetLuan)
	printSection("Hướng hỗ trợ", result.HuongHoTro)
	printSection("Gợi ý sản phẩm", result.GoiYSanPham)
	printSection("Cách dùng", result.CachDung)
	printSection("Ăn uống – Sinh hoạt", result.AnUongSinhHoat)
}

func printSection(title, content string) {
	if content == "" {
		return
	}

	headerColor.Printf("%s\n", title)
	for _, line := range markup.Parse(content) {
		if line.Bullet {
			bulletColor.Print("• ")
		}
		for _, span := range line.Spans {
			switch span.Kind {
			case markup.SpanStrong:
				strongColor.Print(span.Text)
			case markup.SpanArrow:
				arrowColor.Print(span.Text)
			default:
				fmt.Print(span.Text)
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

package employee

import (
	"bytes"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

var _ = ginkgo.Describe("ExcelExporter", func() {
	var exporter *ExcelExporter

	ginkgo.BeforeEach(func() {
		exporter = NewExcelExporter()
	})

	readRows := func(buf *bytes.Buffer) [][]string {
		f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		defer f.Close()

		gomega.Expect(f.GetSheetList()).To(gomega.ConsistOf("Employees"))

		rows, err := f.GetRows("Employees")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return rows
	}

	ginkgo.It("should write the header row and one row per employee", func() {
		// Given
		employees := []*Employee{
			{
				FirstName:   "Alice",
				LastName:    "Smith",
				Email:       "alice@example.com",
				Department:  strPtr("Engineering"),
				Position:    strPtr("Developer"),
				PhoneNumber: strPtr("555-0100"),
			},
			{
				FirstName: "Bob",
				LastName:  "Jones",
				Email:     "bob@example.com",
			},
		}
		var buf bytes.Buffer

		// When
		err := exporter.Write(&buf, employees)

		// Then
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		rows := readRows(&buf)
		gomega.Expect(rows).To(gomega.HaveLen(3))
		gomega.Expect(rows[0]).To(gomega.Equal([]string{"Name", "Email", "Department", "Position", "Phone"}))
		gomega.Expect(rows[1]).To(gomega.Equal([]string{"Alice Smith", "alice@example.com", "Engineering", "Developer", "555-0100"}))
		gomega.Expect(rows[2][0]).To(gomega.Equal("Bob Jones"))
		gomega.Expect(rows[2][1]).To(gomega.Equal("bob@example.com"))
	})

	ginkgo.It("should produce a workbook with only the header when the directory is empty", func() {
		// Given
		var buf bytes.Buffer

		// When
		err := exporter.Write(&buf, nil)

		// Then
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		rows := readRows(&buf)
		gomega.Expect(rows).To(gomega.HaveLen(1))
		gomega.Expect(rows[0]).To(gomega.Equal([]string{"Name", "Email", "Department", "Position", "Phone"}))
	})
})

package stats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/session"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/store"
)

// Delete removes the record at the given position after asking for
// confirmation. It reloads the records first so the position is
// validated against the current snapshot.
func Delete(db store.Records, index int, stdin io.Reader, stdout io.Writer) error {
	records, err := db.Load()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(records) {
		return session.ErrIndexOutOfRange
	}

	PrintRecordsTable(stdout, []session.Record{records[index]})

	warning := pterm.Warning.Sprint(
		"The above record will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(stdout, warning)

	reader := bufio.NewReader(stdin)

	_, _ = reader.ReadString('\n')

	return db.DeleteAt(index)
}
